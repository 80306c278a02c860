package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// fetchInstruction reads the two bytes at the program counter as a
// big-endian 16-bit instruction word. The most significant byte is
// stored at the smaller memory address.
func (c *Chip8) fetchInstruction() uint16 {
	byte1 := c.memory[c.programCounter]
	byte2 := c.memory[c.programCounter+1]

	return uint16(byte1)<<8 | uint16(byte2)
}

// ExecNextInstruction fetches, decodes and executes a single instruction.
// The program counter is advanced by 2 before dispatch, jump, call, skip
// and return instructions mutate it again within the same call. An
// instruction word matching no implemented pattern results in an
// UnimplementedInstructionError carrying the opcode and its address.
func (c *Chip8) ExecNextInstruction() error {
	opcode := c.fetchInstruction()
	c.programCounter += 2

	ins := decodeInstruction(opcode)

	if c.trace != nil {
		c.trace.Debug("Executing instruction",
			log.String("opcode", fmt.Sprintf("0x%04x", opcode)),
			log.String("name", instructionName(opcode)),
			log.String("address", fmt.Sprintf("0x%04x", c.programCounter-2)),
		)
	}

	switch ins.group {
	case 0x0:
		return c.execGroup0(ins)

	case 0x1: // jump
		c.jumpToAddress(ins.address)
	case 0x2: // call subroutine
		return c.callSubroutine(ins.address)
	case 0x3:
		c.skipIfXEqualsConst(ins.x, ins.constVal)
	case 0x4:
		c.skipIfXNotEqualsConst(ins.x, ins.constVal)
	case 0x5:
		if ins.subgroup != 0x0 {
			return c.unimplemented(ins)
		}
		c.skipIfXEqualsY(ins.x, ins.y)
	case 0x6:
		c.assignConstToX(ins.x, ins.constVal)
	case 0x7:
		c.addConstToX(ins.x, ins.constVal)

	case 0x8:
		return c.execGroup8(ins)

	case 0x9:
		if ins.subgroup != 0x0 {
			return c.unimplemented(ins)
		}
		c.skipIfXNotEqualsY(ins.x, ins.y)
	case 0xA:
		c.setIndexRegister(ins.address)
	case 0xB: // jump with displacement
		c.jumpToAddress(ins.address + uint16(c.registers[0x0]))
	case 0xD:
		c.displaySprite(ins.x, ins.y, ins.nibble)

	case 0xE:
		return c.execGroupE(ins)
	case 0xF:
		return c.execGroupF(ins)

	default:
		return c.unimplemented(ins)
	}

	return nil
}

// execGroup0 handles the 0x0 opcode group: the end of program sentinel,
// clear screen and return from subroutine.
func (c *Chip8) execGroup0(ins instruction) error {
	switch ins.opcode {
	case 0x0000:
		// the all-zero word is used as the end of program sentinel for
		// programs without a trailing halt
		c.reachedEnd = true
	case 0x00E0:
		c.screen.Clear()
	case 0x00EE:
		return c.returnFromSubroutine()
	default:
		return c.unimplemented(ins)
	}
	return nil
}

// execGroup8 handles the 0x8 opcode group: register to register math,
// bitwise operations and shifts, disambiguated by the subgroup nibble.
func (c *Chip8) execGroup8(ins instruction) error {
	switch ins.subgroup {
	case 0x0:
		c.assignYToX(ins.x, ins.y)
	case 0x1:
		c.registers[ins.x] |= c.registers[ins.y]
	case 0x2:
		c.registers[ins.x] &= c.registers[ins.y]
	case 0x3:
		c.registers[ins.x] ^= c.registers[ins.y]
	case 0x4:
		c.addYToX(ins.x, ins.y)
	case 0x5:
		c.subtractYFromX(ins.x, ins.y)
	case 0x6:
		c.rightBitShift(ins.x, ins.y)
	case 0x7:
		c.subtractXFromY(ins.x, ins.y)
	case 0xE:
		c.leftBitShift(ins.x, ins.y)
	default:
		return c.unimplemented(ins)
	}
	return nil
}

// execGroupE handles the 0xE opcode group: key state conditional skips.
func (c *Chip8) execGroupE(ins instruction) error {
	switch ins.constVal {
	case 0x9E:
		c.skipIfKeyPressed(ins.x)
	case 0xA1:
		c.skipIfKeyNotPressed(ins.x)
	default:
		return c.unimplemented(ins)
	}
	return nil
}

// execGroupF handles the 0xF opcode group: timer transfers, index
// register operations, register dump/load and the keypress wait.
func (c *Chip8) execGroupF(ins instruction) error {
	switch ins.constVal {
	case 0x07:
		c.registers[ins.x] = c.delayTimer
	case 0x0A:
		c.awaitKeypress(ins.x)
	case 0x15:
		c.delayTimer = c.registers[ins.x]
	case 0x18:
		c.soundTimer = c.registers[ins.x]
	case 0x1E:
		c.addXToIndex(ins.x)
	case 0x29:
		c.setIndexToCharFont(ins.x)
	case 0x55:
		c.dumpRegistersToMemory(ins.x)
	case 0x65:
		c.loadRegistersFromMemory(ins.x)
	default:
		return c.unimplemented(ins)
	}
	return nil
}

// unimplemented builds the error for an instruction word that matches no
// implemented pattern. The program counter has already been advanced, so
// the reported address points back at the fetched word.
func (c *Chip8) unimplemented(ins instruction) error {
	return &UnimplementedInstructionError{
		Opcode:  ins.opcode,
		Address: c.programCounter - 2,
	}
}

// addYToX adds Y into X with 8-bit wraparound. In comparison to
// addConstToX this one does set the carry flag in the VF register.
func (c *Chip8) addYToX(xRegID, yRegID byte) {
	arg1 := c.registers[xRegID]
	arg2 := c.registers[yRegID]

	value := arg1 + arg2
	c.registers[xRegID] = value

	// set carry flag
	if value < arg1 {
		c.registers[FlagRegister] = 1
	} else {
		c.registers[FlagRegister] = 0
	}
}

// addConstToX adds a constant into X with 8-bit wraparound. In
// comparison to addYToX this one does not touch the VF register.
func (c *Chip8) addConstToX(xRegID, constVal byte) {
	c.registers[xRegID] += constVal
}

// subtractYFromX computes X = X - Y with 8-bit wraparound. If the
// operation borrows, VF is set to 0, otherwise it is set to 1.
func (c *Chip8) subtractYFromX(xRegID, yRegID byte) {
	arg1 := c.registers[xRegID]
	arg2 := c.registers[yRegID]

	c.registers[xRegID] = arg1 - arg2

	// set inverted borrow flag
	if arg1 < arg2 {
		c.registers[FlagRegister] = 0
	} else {
		c.registers[FlagRegister] = 1
	}
}

// subtractXFromY computes Y - X with 8-bit wraparound. Even though X is
// subtracted from Y, the result is stored in X. If the operation
// borrows, VF is set to 0, otherwise it is set to 1.
func (c *Chip8) subtractXFromY(xRegID, yRegID byte) {
	arg1 := c.registers[xRegID]
	arg2 := c.registers[yRegID]

	c.registers[xRegID] = arg2 - arg1

	// set inverted borrow flag
	if arg2 < arg1 {
		c.registers[FlagRegister] = 0
	} else {
		c.registers[FlagRegister] = 1
	}
}

func (c *Chip8) assignConstToX(xRegID, constVal byte) {
	c.registers[xRegID] = constVal
}

func (c *Chip8) assignYToX(xRegID, yRegID byte) {
	c.registers[xRegID] = c.registers[yRegID]
}

// rightBitShift shifts the X register 1 position to the right. VF
// receives the least significant bit before the shift. If the
// AssignBeforeShift quirk is enabled, Y is loaded into X first.
func (c *Chip8) rightBitShift(xRegID, yRegID byte) {
	if c.quirks.AssignBeforeShift {
		c.assignYToX(xRegID, yRegID)
	}

	c.registers[FlagRegister] = c.registers[xRegID] & 0x01
	c.registers[xRegID] >>= 1
}

// leftBitShift shifts the X register 1 position to the left. VF receives
// the most significant bit before the shift. If the AssignBeforeShift
// quirk is enabled, Y is loaded into X first.
func (c *Chip8) leftBitShift(xRegID, yRegID byte) {
	if c.quirks.AssignBeforeShift {
		c.assignYToX(xRegID, yRegID)
	}

	c.registers[FlagRegister] = (c.registers[xRegID] & 0x80) >> 7
	c.registers[xRegID] <<= 1
}

func (c *Chip8) skipIfXEqualsConst(xRegID, constVal byte) {
	if c.registers[xRegID] == constVal {
		c.programCounter += 2
	}
}

func (c *Chip8) skipIfXNotEqualsConst(xRegID, constVal byte) {
	if c.registers[xRegID] != constVal {
		c.programCounter += 2
	}
}

func (c *Chip8) skipIfXEqualsY(xRegID, yRegID byte) {
	if c.registers[xRegID] == c.registers[yRegID] {
		c.programCounter += 2
	}
}

func (c *Chip8) skipIfXNotEqualsY(xRegID, yRegID byte) {
	if c.registers[xRegID] != c.registers[yRegID] {
		c.programCounter += 2
	}
}

// callSubroutine pushes the current program counter onto the stack and
// jumps to the target address.
func (c *Chip8) callSubroutine(address uint16) error {
	if err := c.stack.Push(c.programCounter); err != nil {
		return fmt.Errorf("calling subroutine at 0x%04x: %w", address, err)
	}
	c.programCounter = address
	return nil
}

// returnFromSubroutine pops the stored return address into the program
// counter.
func (c *Chip8) returnFromSubroutine() error {
	address, err := c.stack.Pop()
	if err != nil {
		return fmt.Errorf("returning from subroutine: %w", err)
	}
	c.programCounter = address
	return nil
}

func (c *Chip8) jumpToAddress(address uint16) {
	c.programCounter = address
}

func (c *Chip8) setIndexRegister(address uint16) {
	c.indexRegister = address
}

// addXToIndex adds the X register to the index register. If the
// SetFlagOnIndexOverflow quirk is enabled and the index register moves
// outside the normal addressing range, VF is set to 1. The reference
// interpreters disagree on the exact bound, the strict comparison
// against 0x1000 after the add is kept here.
func (c *Chip8) addXToIndex(xRegID byte) {
	c.indexRegister += uint16(c.registers[xRegID])

	// set overflow flag
	if c.quirks.SetFlagOnIndexOverflow && c.indexRegister > 0x1000 {
		c.registers[FlagRegister] = 1
	}
}

// setIndexToCharFont points the index register at the font sprite of the
// character in the low nibble of the X register.
func (c *Chip8) setIndexToCharFont(xRegID byte) {
	character := c.registers[xRegID] & 0xF
	c.indexRegister = FontStartAddress + uint16(character)*5
}

// dumpRegistersToMemory writes the registers V0 through VX sequentially
// into memory starting at the index register. If the
// ModifyIndexOnDumpOrLoad quirk is enabled, the index register is
// advanced past the written region.
func (c *Chip8) dumpRegistersToMemory(xRegID byte) {
	address := c.indexRegister
	for regID := byte(0); regID <= xRegID; regID++ {
		c.memory[address] = c.registers[regID]
		address++
	}

	if c.quirks.ModifyIndexOnDumpOrLoad {
		c.indexRegister = address
	}
}

// loadRegistersFromMemory reads the registers V0 through VX sequentially
// from memory starting at the index register. If the
// ModifyIndexOnDumpOrLoad quirk is enabled, the index register is
// advanced past the read region.
func (c *Chip8) loadRegistersFromMemory(xRegID byte) {
	address := c.indexRegister
	for regID := byte(0); regID <= xRegID; regID++ {
		c.registers[regID] = c.memory[address]
		address++
	}

	if c.quirks.ModifyIndexOnDumpOrLoad {
		c.indexRegister = address
	}
}

// displaySprite draws a sprite of the given pixel height read from
// memory at the index register, at the screen position stored in the X
// and Y registers. VF is set to 1 if a previously set pixel was turned
// off.
func (c *Chip8) displaySprite(xRegID, yRegID, pixelHeight byte) {
	xPos := c.registers[xRegID]
	yPos := c.registers[yRegID]

	spriteData := c.memory[c.indexRegister : c.indexRegister+uint16(pixelHeight)]

	if c.screen.DrawSprite(xPos, yPos, spriteData) {
		c.registers[FlagRegister] = 1
	}
}

func (c *Chip8) skipIfKeyPressed(xRegID byte) {
	keyID := c.registers[xRegID]
	if c.keypad.IsPressed(keyID) {
		c.programCounter += 2
	}
}

func (c *Chip8) skipIfKeyNotPressed(xRegID byte) {
	keyID := c.registers[xRegID]
	if !c.keypad.IsPressed(keyID) {
		c.programCounter += 2
	}
}

// awaitKeypress stores the lowest pressed key in the X register. If no
// key is pressed, the program counter is rewound by 2 so the same
// instruction is fetched again on the next execution. This cooperative
// busy-wait keeps the frame loop responsive while the keypad state is
// refreshed between frames.
func (c *Chip8) awaitKeypress(xRegID byte) {
	keyID, pressed := c.keypad.FirstPressed()
	if pressed {
		c.registers[xRegID] = keyID
		return
	}

	// repeat instruction until a keypress is found
	c.programCounter -= 2
}
