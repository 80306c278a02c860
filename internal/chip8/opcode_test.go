package chip8

import (
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeInstruction(t *testing.T) {
	ins := decodeInstruction(0xD12F)

	assert.Equal(t, uint16(0xD12F), ins.opcode)
	assert.Equal(t, byte(0xD), ins.group)
	assert.Equal(t, byte(0x1), ins.x)
	assert.Equal(t, byte(0x2), ins.y)
	assert.Equal(t, byte(0xF), ins.subgroup)
	assert.Equal(t, uint16(0x12F), ins.address)
	assert.Equal(t, byte(0x2F), ins.constVal)
	assert.Equal(t, byte(0xF), ins.nibble)
}

func TestInstructionName(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		want   string
	}{
		{name: "clear screen", opcode: 0x00E0, want: chip8cpu.ClsName},
		{name: "return", opcode: 0x00EE, want: chip8cpu.RetName},
		{name: "jump", opcode: 0x1228, want: chip8cpu.JpName},
		{name: "call", opcode: 0x2300, want: chip8cpu.CallName},
		{name: "add registers", opcode: 0x8014, want: chip8cpu.AddName},
		{name: "draw sprite", opcode: 0xD01F, want: chip8cpu.DrwName},
		{name: "skip if key pressed", opcode: 0xE09E, want: chip8cpu.SkpName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, instructionName(tt.opcode))
		})
	}
}

func TestUnimplementedInstructionError(t *testing.T) {
	err := &UnimplementedInstructionError{Opcode: 0xF0FF, Address: 0x0200}

	assert.ErrorContains(t, err, "0xf0ff")
	assert.ErrorContains(t, err, "0x0200")
}
