// Package chip8 implements the CHIP-8 virtual machine.
// It fetches 16-bit opcodes from a 4KB memory space, decodes them and
// mutates the register file, call stack, framebuffer and timers.
package chip8

import (
	"fmt"
	"time"

	"github.com/retroenv/chip8emu/internal/keypad"
	"github.com/retroenv/chip8emu/internal/screen"
	"github.com/retroenv/chip8emu/internal/stack"
	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: unused interpreter area
//	0x050-0x09F: font data (16 characters x 5 bytes)
//	0x200-0xFFF: user program space
const (
	// FlagRegister is the ID of the VF register which is used as the
	// carry/borrow/shift-bit/collision output of several instructions.
	FlagRegister = 0xF

	// FontStartAddress is the memory address where the font data is stored.
	FontStartAddress = 0x050

	// ProgramStartAddress is the memory address where CHIP-8 programs
	// begin execution.
	ProgramStartAddress = 0x200

	// MemorySize is the size of the CHIP-8 address space in bytes.
	MemorySize = 0x1000

	// NumRegisters is the number of general purpose registers.
	NumRegisters = 16
)

// instructionDuration is the execution budget of a single instruction,
// emulating a ~700 Hz reference clock.
const instructionDuration = time.Second / 700

// Quirks configures deviations in instruction semantics that reflect
// divergent historical interpreter behavior. The values are fixed at
// machine construction.
type Quirks struct {
	// AssignBeforeShift loads the Y register into X before the 8XY6/8XYE
	// shift operations are applied to X.
	AssignBeforeShift bool

	// SetFlagOnIndexOverflow sets VF to 1 if the FX1E instruction moves
	// the index register outside the normal addressing range.
	SetFlagOnIndexOverflow bool

	// ModifyIndexOnDumpOrLoad advances the index register past the
	// written region during the FX55 and FX65 instructions.
	ModifyIndexOnDumpOrLoad bool
}

// Chip8 is the CHIP-8 machine: register file, memory, index register,
// timers and the fetch-decode-execute engine composing the call stack,
// screen and keypad. It is exclusively owned and mutated by a single
// caller, no locking discipline is required.
type Chip8 struct {
	registers      [NumRegisters]byte
	programCounter uint16
	memory         [MemorySize]byte

	quirks Quirks

	stack  *stack.Stack
	screen *screen.Screen
	keypad keypad.Keypad

	// aka the I register, used to point at locations in memory
	indexRegister uint16

	delayTimer   byte
	soundTimer   byte
	playingSound bool

	// unspent execution time carried across frames
	execTime time.Duration

	reachedEnd bool

	trace *log.Logger
}

// New returns a new machine with the program counter set to the program
// start address and the given quirk configuration.
func New(quirks Quirks) *Chip8 {
	return &Chip8{
		programCounter: ProgramStartAddress,
		quirks:         quirks,
		stack:          stack.New(),
		screen:         screen.New(),
		keypad:         keypad.New(),
	}
}

// SetTraceLogger enables debug tracing of executed instructions.
func (c *Chip8) SetTraceLogger(logger *log.Logger) {
	c.trace = logger
}

// RunFrame advances the machine by one frame: both timers are decremented
// once, then instructions are executed until the elapsed frame duration
// is paid off at a fixed rate of one instruction per 1/700s. Fractional
// leftover time is carried into the next frame. The first instruction
// error aborts the frame, with the timer decrements already applied.
func (c *Chip8) RunFrame(frameDuration time.Duration) error {
	c.decrementTimers()

	c.execTime += frameDuration

	for c.execTime >= instructionDuration {
		if err := c.ExecNextInstruction(); err != nil {
			return err
		}
		c.execTime -= instructionDuration
	}

	return nil
}

// decrementTimers decrements the delay and sound timers by at most 1,
// flooring them at 0, and derives the playing sound signal. It is
// called once per frame, which is expected to happen 60 times a second.
func (c *Chip8) decrementTimers() {
	if c.delayTimer >= 1 {
		c.delayTimer--
	}

	if c.soundTimer <= 1 {
		c.playingSound = false
		c.soundTimer = 0
	} else {
		c.playingSound = true
		c.soundTimer--
	}
}

// LoadKeypad replaces the keypad state with a fresh snapshot.
// The embedder calls this once per frame before advancing the machine.
func (c *Chip8) LoadKeypad(k keypad.Keypad) {
	c.keypad = k
}

// LoadBytes copies the given bytes verbatim into memory starting at the
// given address.
func (c *Chip8) LoadBytes(data []byte, address uint16) {
	copy(c.memory[address:], data)
}

// LoadOpcode writes a single instruction word in big-endian order at the
// given address.
func (c *Chip8) LoadOpcode(opcode, address uint16) {
	c.memory[address] = byte((opcode & 0xFF00) >> 8)
	c.memory[address+1] = byte(opcode & 0x00FF)
}

// LoadOpcodes writes consecutive instruction words starting at the given
// address.
func (c *Chip8) LoadOpcodes(opcodes []uint16, address uint16) {
	for _, opcode := range opcodes {
		c.LoadOpcode(opcode, address)
		address += 2
	}
}

// LoadFont copies the font sprite data into the reserved font memory
// region at 0x050.
func (c *Chip8) LoadFont(fontData [16][5]byte) {
	address := uint16(FontStartAddress)
	for _, character := range fontData {
		for _, b := range character {
			c.memory[address] = b
			address++
		}
	}
}

// LoadRegister sets a single register to the given value.
func (c *Chip8) LoadRegister(regID, value byte) {
	c.registers[regID] = value
}

// LoadRegisters sets all 16 registers.
func (c *Chip8) LoadRegisters(values [NumRegisters]byte) {
	c.registers = values
}

// LoadIndexRegister sets the index register to the given address.
func (c *Chip8) LoadIndexRegister(address uint16) {
	c.indexRegister = address
}

// Register returns the current value of a register.
func (c *Chip8) Register(regID byte) byte {
	return c.registers[regID]
}

// IndexRegister returns the current value of the index register.
func (c *Chip8) IndexRegister() uint16 {
	return c.indexRegister
}

// ProgramCounter returns the current program counter.
func (c *Chip8) ProgramCounter() uint16 {
	return c.programCounter
}

// ReadMemory returns the byte stored at the given address.
func (c *Chip8) ReadMemory(address uint16) byte {
	return c.memory[address]
}

// PlayingSound returns whether the sound timer is keeping the tone
// playing. The audio collaborator polls this after each frame.
func (c *Chip8) PlayingSound() bool {
	return c.playingSound
}

// ReachedEnd returns whether the all-zero end of program sentinel has
// been fetched. Nothing prevents further execution, but no caller is
// obligated to continue.
func (c *Chip8) ReachedEnd() bool {
	return c.reachedEnd
}

// FrameBuffer returns a snapshot of the 64x32 pixel grid.
func (c *Chip8) FrameBuffer() [screen.Height][screen.Width]bool {
	return c.screen.FrameBuffer()
}

// Reset clears the registers, resets the program counter to the program
// start address and clears the end of program flag. Memory, timers and
// the screen are left untouched.
func (c *Chip8) Reset() {
	c.reachedEnd = false
	c.programCounter = ProgramStartAddress
	c.registers = [NumRegisters]byte{}
}

// DebugString returns a dump of the register file for diagnostics.
func (c *Chip8) DebugString() string {
	s := "registers:\n"
	for i, reg := range c.registers {
		s += fmt.Sprintf("\tV%X: 0x%02x = %3d\n", i, reg, reg)
	}
	s += fmt.Sprintf("\tI: 0x%04x PC: 0x%04x\n", c.indexRegister, c.programCounter)
	return s
}
