// Package mailtest runs an in-process SMTP server for tests.
package mailtest

import (
	"encoding/base64"
	"net"
	"net/textproto"
	"strings"
	"sync"
	"testing"
)

// Message is one accepted DATA transaction.
type Message struct {
	From     string
	To       []string
	Data     string
	AuthUser string
	AuthPass string
}

// Server accepts plain-text SMTP on 127.0.0.1. It advertises AUTH PLAIN LOGIN
// and never STARTTLS.
type Server struct {
	rejectRcpt bool

	ln       net.Listener
	mu       sync.Mutex
	messages []Message
	wg       sync.WaitGroup
}

// Option configures a Server.
type Option func(*Server)

// RejectRecipients makes every RCPT TO fail with 550.
func RejectRecipients() Option {
	return func(s *Server) { s.rejectRcpt = true }
}

// Start listens on a random port and stops the server on test cleanup.
func Start(t testing.TB, opts ...Option) *Server {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("mailtest: listen: %v", err)
	}
	s := &Server{ln: ln}
	for _, opt := range opts {
		opt(s)
	}
	s.wg.Add(1)
	go s.serve()

	t.Cleanup(func() {
		_ = ln.Close()
		s.wg.Wait()
	})
	return s
}

// Host returns the listening host.
func (s *Server) Host() string {
	return s.ln.Addr().(*net.TCPAddr).IP.String()
}

// Port returns the listening port.
func (s *Server) Port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

// Messages returns a copy of every accepted message.
func (s *Server) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

func (s *Server) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(conn)
		}()
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	tp := textproto.NewConn(conn)
	reply := func(line string) { _ = tp.PrintfLine("%s", line) }

	reply("220 mailtest ESMTP")

	var cur Message
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		verb, arg, _ := strings.Cut(line, " ")

		switch strings.ToUpper(verb) {
		case "EHLO", "HELO":
			reply("250-mailtest")
			reply("250-AUTH PLAIN LOGIN")
			reply("250 8BITMIME")
		case "AUTH":
			mech, initial, _ := strings.Cut(arg, " ")
			switch strings.ToUpper(mech) {
			case "PLAIN":
				raw, _ := base64.StdEncoding.DecodeString(initial)
				parts := strings.SplitN(string(raw), "\x00", 3)
				if len(parts) == 3 {
					cur.AuthUser, cur.AuthPass = parts[1], parts[2]
				}
				reply("235 2.7.0 Authentication successful")
			case "LOGIN":
				cur.AuthUser = s.challenge(tp, "VXNlcm5hbWU6")
				cur.AuthPass = s.challenge(tp, "UGFzc3dvcmQ6")
				reply("235 2.7.0 Authentication successful")
			default:
				reply("504 5.5.4 Unrecognized authentication type")
			}
		case "MAIL":
			cur.From = addrArg(arg)
			reply("250 OK")
		case "RCPT":
			if s.rejectRcpt {
				reply("550 5.1.1 Mailbox unavailable")
				continue
			}
			cur.To = append(cur.To, addrArg(arg))
			reply("250 OK")
		case "DATA":
			reply("354 End data with <CR><LF>.<CR><LF>")
			data, err := tp.ReadDotBytes()
			if err != nil {
				return
			}
			cur.Data = string(data)
			s.mu.Lock()
			s.messages = append(s.messages, cur)
			s.mu.Unlock()
			cur = Message{AuthUser: cur.AuthUser, AuthPass: cur.AuthPass}
			reply("250 OK: queued")
		case "RSET":
			cur = Message{}
			reply("250 OK")
		case "NOOP":
			reply("250 OK")
		case "QUIT":
			reply("221 Bye")
			return
		default:
			reply("502 5.5.2 Command not implemented")
		}
	}
}

func (s *Server) challenge(tp *textproto.Conn, prompt string) string {
	_ = tp.PrintfLine("334 %s", prompt)
	line, err := tp.ReadLine()
	if err != nil {
		return ""
	}
	raw, _ := base64.StdEncoding.DecodeString(line)
	return string(raw)
}

// addrArg extracts the address from "FROM:<a@b> BODY=8BITMIME".
func addrArg(arg string) string {
	if i := strings.Index(arg, "<"); i >= 0 {
		if j := strings.Index(arg[i:], ">"); j > 0 {
			return arg[i+1 : i+j]
		}
	}
	return arg
}
