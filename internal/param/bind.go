package param

import "github.com/tuannm99/rowmat/internal/engine"

// Bind produces one engine descriptor per parameter, in placeholder order.
// String descriptors alias the parameter's bytes; scalar descriptors point
// into the params slice itself, which stays reachable for as long as the
// returned descriptors are, so the engine reads a stable location at
// execute time. Whether the descriptor count matches the statement's
// placeholder count is checked by the engine, not here.
func Bind(params []Parameter) []engine.BindArg {
	if len(params) == 0 {
		return nil
	}
	args := make([]engine.BindArg, len(params))
	for i := range params {
		p := &params[i]
		switch p.kind {
		case KindString:
			args[i] = engine.BindArg{Kind: engine.BindBytes, Data: p.data}
		case KindInt:
			args[i] = engine.BindArg{Kind: engine.BindInt64, Int: &p.num}
		case KindFloat:
			args[i] = engine.BindArg{Kind: engine.BindFloat64, Float: &p.real}
		default:
			args[i] = engine.BindArg{Kind: engine.BindNull}
		}
	}
	return args
}
