package evdev

// InputEvent mirrors struct input_event on 64-bit Linux: a timeval
// followed by type, code and value. Read and written little-endian as
// fixed 24-byte records.
type InputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}
