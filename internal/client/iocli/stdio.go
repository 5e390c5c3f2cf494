package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	successMark = color.New(color.FgGreen, color.Bold).Sprint("✓")
	warningMark = color.New(color.FgYellow, color.Bold).Sprint("!")
)

// Stdio реализует IO поверх терминала или произвольных потоков
type Stdio struct {
	in     *bufio.Reader
	out    io.Writer
	stdin  *os.File
	isTerm func(fd int) bool
}

// NewStdio использует os.Stdin и os.Stdout
func NewStdio() IO {
	return &Stdio{
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		stdin:  os.Stdin,
		isTerm: term.IsTerminal,
	}
}

// NewStreams читает из in и пишет в out; пароль читается как обычная строка
func NewStreams(in io.Reader, out io.Writer) IO {
	return &Stdio{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Success(format string, a ...any) {
	s.Printf("%s %s\n", successMark, fmt.Sprintf(format, a...))
}

func (s *Stdio) Warning(format string, a ...any) {
	s.Printf("%s %s\n", warningMark, fmt.Sprintf(format, a...))
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword не отображает ввод, если stdin - терминал
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.stdin == nil || s.isTerm == nil || !s.isTerm(int(s.stdin.Fd())) {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(int(s.stdin.Fd()))
	s.Println()
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
