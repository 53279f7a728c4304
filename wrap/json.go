package wrap

import (
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"interpose/signature"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// CallRecord is the structured form of one logged call.
type CallRecord struct {
	CallID string         `json:"call_id"`
	Func   string         `json:"func"`
	Args   []any          `json:"args"`
	Kwargs map[string]any `json:"kwargs"`
}

// JSONFormat renders one call as a JSON record carrying a fresh
// correlation id. Values that cannot be marshalled fall back to the
// capped string rendering used by CallSignature.
func JSONFormat(name string, pos []any, named *signature.Args) string {
	rec := CallRecord{
		CallID: uuid.NewString(),
		Func:   name,
		Args:   make([]any, 0, len(pos)),
		Kwargs: make(map[string]any, named.Len()),
	}

	for _, v := range pos {
		rec.Args = append(rec.Args, jsonSafe(v))
	}

	for _, p := range named.Pairs() {
		rec.Kwargs[p.Name] = jsonSafe(p.Value)
	}

	data, err := jsonAPI.Marshal(rec)
	if err != nil {
		return CallSignature(name, pos, named)
	}

	return string(data)
}

func jsonSafe(v any) any {
	if _, err := jsonAPI.Marshal(v); err != nil {
		return specialValue(v)
	}

	return v
}
