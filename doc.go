// Package godxf provides:
//
// - A schema-driven codec for DXF tagged entity records (Decode/Encode)
// - A stable diagnostic model via Issues (line number, code, message)
// - Presence metadata distinguishing fields seen on the wire from defaults
// - Version gating and default elision driven by declarative FieldSlot tables
//
// Design policy:
// - Keep the engine and per-kind value parsing together in the root package.
// - Place the schema builder under dsl/, builtin entity tables under entities/,
//   and the CLI under cmd/godxf.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	r := godxf.NewReader(f)
//	sch, newRec, _ := godxf.Lookup("ARC")
//	dec, err := godxf.Decode(ctx, sch, r, godxf.R2000)
//
//	w := godxf.NewWriter(out)
//	err = godxf.Encode(ctx, dec.Record, sch, w, godxf.R2000)
package godxf
