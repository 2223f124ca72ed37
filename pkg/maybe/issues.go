package maybe

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Issue represents a single validation-rule violation.
type Issue struct {
	Path    string `json:"path,omitempty"` // JSON Pointer (for example: /items/2/price).
	Code    string `json:"code,omitempty"` // Engine rule code (for example: too_short).
	Message string `json:"message"`        // Human-readable description, always present.
}

// Issues is a collection of independent violations that implements error.
type Issues []Issue

// String projects the collection to its JSON-array diagnostic form, one entry
// per violation.
func (iss Issues) String() string {
	if len(iss) == 0 {
		return ""
	}
	b, err := json.Marshal(iss)
	if err != nil {
		return fmt.Sprintf(`[{"message":%q}]`, err.Error())
	}
	return string(b)
}

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		switch {
		case it.Path == "":
			b.WriteString(it.Message)
		case it.Code == "":
			fmt.Fprintf(b, "%s at %s", it.Message, it.Path)
		case it.Message == "":
			fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		default:
			fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
		}
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// DecodeIssues parses a JSON-array diagnostic back into its violations.
func DecodeIssues(diag string) (Issues, error) {
	if diag == "" {
		return nil, nil
	}
	var iss Issues
	if err := json.Unmarshal([]byte(diag), &iss); err != nil {
		return nil, err
	}
	return iss, nil
}

// IssuesFromError flattens an error (including errors.Join aggregates) into
// one Issue per underlying cause.
func IssuesFromError(err error) Issues {
	errs := GetErrors(err)
	if len(errs) == 0 {
		return nil
	}
	iss := make(Issues, 0, len(errs))
	for _, e := range errs {
		iss = append(iss, Issue{Message: e.Error()})
	}
	return iss
}
