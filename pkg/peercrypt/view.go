package peercrypt

// View is a bounds-checked window into a byte buffer. The invariant
// start <= end < len(buf) is validated at construction, so code consuming a
// View never performs offset arithmetic of its own. The end index is
// inclusive.
type View struct {
	buf   []byte
	start int
	end   int
}

// NewView creates a View over buf[start..end] (end inclusive). It returns
// ErrInputBounds when the window falls outside the buffer.
func NewView(buf []byte, start, end int) (View, error) {
	if start < 0 || end < start || end >= len(buf) {
		return View{}, errorf("NewView", ErrInputBounds,
			"window [%d, %d] outside buffer of %d bytes", start, end, len(buf))
	}
	return View{buf: buf, start: start, end: end}, nil
}

// FullView creates a View spanning the whole buffer. Empty buffers have no
// valid window and return ErrInputBounds.
func FullView(buf []byte) (View, error) {
	return NewView(buf, 0, len(buf)-1)
}

// Len returns the number of bytes in the window.
func (v View) Len() int {
	if v.buf == nil {
		return 0
	}
	return v.end - v.start + 1
}

// BufLen returns the length of the backing buffer.
func (v View) BufLen() int {
	return len(v.buf)
}

// Bytes returns the windowed bytes. The slice aliases the backing buffer.
func (v View) Bytes() []byte {
	if v.buf == nil {
		return nil
	}
	return v.buf[v.start : v.end+1]
}
