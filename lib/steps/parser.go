package steps

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Delimiter separates account, password and steps.
const Delimiter = "#"

// requestRegex matches account#password#digits against the whole (trimmed) text.
var requestRegex = regexp.MustCompile(`^(.+?)#(.+?)#(\d+)$`)

// ChannelKind is where a message was sent.
type ChannelKind int

const (
	ChannelDirect ChannelKind = iota
	ChannelGroup
)

func (k ChannelKind) String() string {
	if k == ChannelGroup {
		return "group"
	}
	return "direct"
}

// Request is one parsed step change. It lives for a single message.
type Request struct {
	Account  string `validate:"required"`
	Password string `validate:"required"`
	Steps    int    `validate:"gte=0,lte=100000"`
}

// LooksLikeRequest is the cheap pre-filter: exactly two delimiters.
func LooksLikeRequest(text string) bool {
	return strings.Count(strings.TrimSpace(text), Delimiter) == 2
}

// Parse splits account#password#steps. Account and password are trimmed and must not be empty.
// A step count too large for int saturates, so it fails range validation instead of parsing.
func Parse(text string) (Request, error) {
	text = strings.TrimSpace(text)
	if !LooksLikeRequest(text) {
		return Request{}, fmt.Errorf("%w: want exactly two %q", ErrParse, Delimiter)
	}
	m := requestRegex.FindStringSubmatch(text)
	if m == nil {
		return Request{}, fmt.Errorf("%w: want account#password#digits", ErrParse)
	}
	account := strings.TrimSpace(m[1])
	password := strings.TrimSpace(m[2])
	if account == "" || password == "" {
		return Request{}, fmt.Errorf("%w: empty account or password", ErrParse)
	}
	n, err := strconv.Atoi(m[3])
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return Request{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		n = math.MaxInt
	}
	return Request{Account: account, Password: password, Steps: n}, nil
}
