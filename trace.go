package peg

// traceEnter, traceExit and traceFail log rule-boundary events at Debug
// level when a logger has been attached to this parse (see Options in
// parse.go). They are no-ops otherwise, so an undecorated Parse call
// pays nothing beyond the nil check.
func (state *ParserState) traceEnter(name string, pos Position) {
	if state.logger == nil {
		return
	}
	state.logger.Debug().
		Str("parse_id", state.traceID).
		Str("rule", name).
		Str("pos", pos.String()).
		Msg("rule enter")
}

func (state *ParserState) traceExit(name string, start, end Position) {
	if state.logger == nil {
		return
	}
	state.logger.Debug().
		Str("parse_id", state.traceID).
		Str("rule", name).
		Str("start", start.String()).
		Str("end", end.String()).
		Msg("rule matched")
}

func (state *ParserState) traceFail(name string, pos Position) {
	if state.logger == nil {
		return
	}
	state.logger.Debug().
		Str("parse_id", state.traceID).
		Str("rule", name).
		Str("pos", pos.String()).
		Msg("rule failed")
}
