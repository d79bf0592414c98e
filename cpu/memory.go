package cpu

// Memory is a flat, zero-defaulted integer store seeded from a program
// image. Reads beyond the written extent return 0; writes extend the
// backing storage on demand. Addresses are never negative.
type Memory struct {
	cells []int64
	image int
}

// NewMemory creates a memory seeded with a copy of the program image.
func NewMemory(image []int64) (mem *Memory) {
	mem = &Memory{}
	mem.Load(image)

	return
}

// Load replaces the contents with a fresh copy of a program image,
// discarding any grown storage.
func (mem *Memory) Load(image []int64) {
	mem.cells = append(mem.cells[:0], image...)
	mem.image = len(image)
}

// ImageLen returns the length of the original program image.
func (mem *Memory) ImageLen() int {
	return mem.image
}

// Read returns the value at addr, or 0 for any never-written address
// beyond the current extent.
func (mem *Memory) Read(addr int64) (value int64, err error) {
	if addr < 0 {
		err = ErrAddress(addr)
		return
	}

	if addr < int64(len(mem.cells)) {
		value = mem.cells[addr]
	}

	return
}

// Write stores value at addr, extending the backing storage as needed.
func (mem *Memory) Write(addr int64, value int64) (err error) {
	if addr < 0 {
		err = ErrAddress(addr)
		return
	}

	if addr >= int64(len(mem.cells)) {
		grown := make([]int64, addr+1-int64(len(mem.cells)))
		mem.cells = append(mem.cells, grown...)
	}

	mem.cells[addr] = value

	return
}
