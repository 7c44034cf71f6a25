// Package tomlops implements a path pointer into TOML-like value trees,
// with chainable navigation, default-coalescing extraction, and
// type-checked mutation.
//
// A pointer is a possibly invalid location inside a tree owned by the
// caller. Navigation never panics: a missing key, an index out of
// bounds, or a step against the wrong container kind turns the pointer
// invalid, and every later operation on an invalid pointer stays
// invalid. Callers observe failure with Valid or simply take the
// default from an extractor.
//
// # Example
//
//	doc, _ := parse.Parse([]byte(`
//	[host]
//	ip = "127.0.0.1"
//	port = 8080
//	proto = ["tcp", "udp"]
//	`))
//
//	port := tomlops.Path(doc).At("host", "port").IntOr(0) // 8080
//
//	node := tomlops.PathMut(doc).At("host/port").Put(int64(8989))
//	port = node.IntOr(0) // 8989
//
//	proto := tomlops.Path(doc).At("host", "proto", 0).StringOr("") // "tcp"
//
//	host := tomlops.PathMut(doc).At("host").
//		PushKV("newkey", "newval").
//		PushKV("morekey", int64(1234))
//	_ = host.Valid() // true
//
//	arr := tomlops.PathMut(doc).At("host", "proto").Push("json")
//	arr.Assign("default") // now a string node
//
//	bad := tomlops.Path(doc).At("host", "no-key")
//	_ = bad.Valid() // false
//
// Path strings use '/' or '.' between segments; purely numeric segments
// index arrays. See the ir/tpath package for the full syntax.
//
// Read pointers (Ptr) may be copied and derived freely. Write pointers
// (PtrMut) hand exclusive access down a chain: each navigation or
// mutation call yields the pointer for the next call, and callers should
// hold at most one live write chain per tree at a time.
package tomlops
