package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// instruction holds all fields decoded from a 16-bit CHIP-8 instruction
// word. Every opcode family reads a subset of these fields.
type instruction struct {
	opcode uint16

	group    byte // opcode group, bits 15-12
	x        byte // X register ID, bits 11-8
	y        byte // Y register ID, bits 7-4
	subgroup byte // opcode subgroup, bits 3-0

	address  uint16 // 12-bit address, bits 11-0
	constVal byte   // 8-bit constant, bits 7-0
	nibble   byte   // 4-bit constant, bits 3-0
}

// decodeInstruction splits an instruction word into its bit fields.
func decodeInstruction(opcode uint16) instruction {
	return instruction{
		opcode:   opcode,
		group:    byte((opcode & 0xF000) >> 12),
		x:        byte((opcode & 0x0F00) >> 8),
		y:        byte((opcode & 0x00F0) >> 4),
		subgroup: byte(opcode & 0x000F),
		address:  opcode & 0x0FFF,
		constVal: byte(opcode & 0x00FF),
		nibble:   byte(opcode & 0x000F),
	}
}

// instructionName resolves the mnemonic of an instruction word using the
// CHIP-8 opcode table, matching on mask and value. Returns an empty
// string for unknown opcodes.
func instructionName(opcode uint16) string {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return ""
}

// UnimplementedInstructionError is returned when a fetched instruction
// word matches no implemented opcode pattern.
type UnimplementedInstructionError struct {
	Opcode  uint16
	Address uint16
}

func (e *UnimplementedInstructionError) Error() string {
	return fmt.Sprintf("there is no implementation for the instruction 0x%04x that was found at memory address 0x%04x",
		e.Opcode, e.Address)
}
