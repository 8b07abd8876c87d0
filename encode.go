package wheel

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeActivities decodes a JSONL stream of canonical activity records.
// Each non-empty line is one TradeActivity. Decoding is structural only;
// replay validates the records it consumes.
func DecodeActivities(r io.Reader) ([]TradeActivity, error) {
	var activities []TradeActivity
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue // Skip empty lines
		}
		var a TradeActivity
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("cannot parse activity on line %d: %q: %w", line, string(raw), err)
		}
		a.Action = ParseActionType(string(a.Action))
		activities = append(activities, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read activity stream: %w", err)
	}
	return activities, nil
}

// EncodeActivity appends one activity record as a JSONL line.
func EncodeActivity(w io.Writer, a TradeActivity) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("cannot marshal activity: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write activity: %w", err)
	}
	return nil
}

// EncodeActivities writes a whole stream in canonical JSONL form.
func EncodeActivities(w io.Writer, activities []TradeActivity) error {
	for _, a := range activities {
		if err := EncodeActivity(w, a); err != nil {
			return err
		}
	}
	return nil
}
