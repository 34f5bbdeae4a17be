// Package conv provides safe integer conversion utilities.
//
// Sequence lengths and byte offsets are int64 throughout the module so that
// element counts are not limited to 32 bits, while the operating system and
// the Go runtime address memory with int. These helpers perform the checked
// hops between the two and guard element-count to byte-count multiplication.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
