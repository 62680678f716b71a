package classify

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

// StatusRange is an inclusive range of HTTP status codes.
type StatusRange struct {
	From int
	To   int
}

func (r StatusRange) contains(code int) bool {
	return code >= r.From && code <= r.To
}

// Policy decides which status codes count as operational. Reads (GET/HEAD)
// and writes (POST/PUT/PATCH/DELETE) carry separate tables: a 404 on a read
// means the route does not exist, while a 404 on a write usually means the
// route wanted a resource ID — the service itself answered. Status 0
// (transport failure) is down for every method.
type Policy struct {
	ReadOperational  []StatusRange
	WriteOperational []StatusRange
}

// Default returns the stock classification table.
func Default() Policy {
	read := []StatusRange{
		{200, 299},
		{300, 303},
		{400, 400},
		{401, 401},
		{403, 403},
		{405, 405},
	}
	write := append([]StatusRange{{404, 404}}, read...)
	return Policy{ReadOperational: read, WriteOperational: write}
}

// Classify maps a status code and request method to a classification.
func (p Policy) Classify(status int, method string) domain.Classification {
	if status == 0 {
		return domain.Down
	}
	table := p.WriteOperational
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodHead, "":
		table = p.ReadOperational
	}
	for _, r := range table {
		if r.contains(status) {
			return domain.Operational
		}
	}
	return domain.Down
}

// ParseRanges parses config-supplied range strings ("200-299", "404") into
// status ranges. Used to override the stock table, since deployments disagree
// on what counts as operational.
func ParseRanges(specs []string) ([]StatusRange, error) {
	out := make([]StatusRange, 0, len(specs))
	for _, s := range specs {
		s = strings.TrimSpace(s)
		from, to, ok := strings.Cut(s, "-")
		lo, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil {
			return nil, fmt.Errorf("status range %q: %w", s, err)
		}
		hi := lo
		if ok {
			hi, err = strconv.Atoi(strings.TrimSpace(to))
			if err != nil {
				return nil, fmt.Errorf("status range %q: %w", s, err)
			}
		}
		if lo < 1 || hi > 599 || hi < lo {
			return nil, fmt.Errorf("status range %q: out of bounds", s)
		}
		out = append(out, StatusRange{From: lo, To: hi})
	}
	return out, nil
}
