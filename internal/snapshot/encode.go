package snapshot

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

// Flat file format: one JSON object, endpoint name → classification string,
// plus an optional "<name>_code" integer holding the last HTTP status.
// No IO here; the file store decides where bytes go.

const codeSuffix = "_code"

func Encode(s *domain.Snapshot) ([]byte, error) {
	doc := make(map[string]any, s.Len()*2)
	for _, name := range s.Names() {
		e, _ := s.Get(name)
		doc[name] = string(e.Classification)
		if e.HTTPStatus != 0 {
			doc[name+codeSuffix] = e.HTTPStatus
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

func Decode(b []byte) (*domain.Snapshot, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(doc))
	classes := make(map[string]string, len(doc))
	for k, raw := range doc {
		if strings.HasSuffix(k, codeSuffix) {
			continue
		}
		var class string
		if err := json.Unmarshal(raw, &class); err != nil {
			continue // not a classification entry
		}
		names = append(names, k)
		classes[k] = class
	}
	sort.Strings(names)

	snap := domain.NewSnapshot()
	for _, name := range names {
		code := 0
		if raw, ok := doc[name+codeSuffix]; ok {
			_ = json.Unmarshal(raw, &code)
		}
		snap.Set(name, domain.SnapshotEntry{
			Classification: domain.Classification(classes[name]),
			HTTPStatus:     code,
		})
	}
	return snap, nil
}
