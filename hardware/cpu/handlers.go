// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// handlers maps each operator to the function that implements it. an
// instruction definition whose operator is not in this map will be treated
// as an illegal opcode.
var handlers = map[instructions.Operator]handler{
	instructions.Nop: (*CPU).nop,
	instructions.Brk: (*CPU).brk,

	instructions.Lda: (*CPU).lda,
	instructions.Ldx: (*CPU).ldx,
	instructions.Ldy: (*CPU).ldy,
	instructions.Sta: (*CPU).sta,
	instructions.Stx: (*CPU).stx,
	instructions.Sty: (*CPU).sty,

	instructions.Tax: (*CPU).tax,
	instructions.Txa: (*CPU).txa,
	instructions.Tay: (*CPU).tay,
	instructions.Tya: (*CPU).tya,
	instructions.Tsx: (*CPU).tsx,
	instructions.Txs: (*CPU).txs,

	instructions.Pha: (*CPU).pha,
	instructions.Pla: (*CPU).pla,
	instructions.Php: (*CPU).php,
	instructions.Plp: (*CPU).plp,

	instructions.Adc: (*CPU).adc,
	instructions.Sbc: (*CPU).sbc,
	instructions.And: (*CPU).and,
	instructions.Ora: (*CPU).ora,
	instructions.Eor: (*CPU).eor,
	instructions.Asl: (*CPU).asl,
	instructions.Lsr: (*CPU).lsr,
	instructions.Rol: (*CPU).rol,
	instructions.Bit: (*CPU).bit,

	instructions.Inc: (*CPU).inc,
	instructions.Dec: (*CPU).dec,
	instructions.Inx: (*CPU).inx,
	instructions.Iny: (*CPU).iny,
	instructions.Dex: (*CPU).dex,
	instructions.Dey: (*CPU).dey,

	instructions.Cmp: (*CPU).cmp,
	instructions.Cpx: (*CPU).cpx,
	instructions.Cpy: (*CPU).cpy,

	instructions.Clc: flag(registers.FlagCarry, false),
	instructions.Sec: flag(registers.FlagCarry, true),
	instructions.Cli: flag(registers.FlagInterruptDisable, false),
	instructions.Sei: flag(registers.FlagInterruptDisable, true),
	instructions.Cld: flag(registers.FlagDecimalMode, false),
	instructions.Sed: flag(registers.FlagDecimalMode, true),
	instructions.Clv: flag(registers.FlagOverflow, false),

	instructions.Bcc: branch(registers.FlagCarry, false),
	instructions.Bcs: branch(registers.FlagCarry, true),
	instructions.Bne: branch(registers.FlagZero, false),
	instructions.Beq: branch(registers.FlagZero, true),
	instructions.Bpl: branch(registers.FlagNegative, false),
	instructions.Bmi: branch(registers.FlagNegative, true),
	instructions.Bvc: branch(registers.FlagOverflow, false),
	instructions.Bvs: branch(registers.FlagOverflow, true),

	instructions.Jmp: (*CPU).jmp,
	instructions.Jsr: (*CPU).jsr,
	instructions.Rts: (*CPU).rts,
}

func (mc *CPU) nop(_ *instructions.Definition) (bool, error) {
	return false, nil
}

func (mc *CPU) brk(_ *instructions.Definition) (bool, error) {
	mc.state = Halted
	return false, nil
}

// load the register with the operand and apply the zero/negative rule.
func (mc *CPU) load(r *registers.Register, mode instructions.AddressingMode) error {
	v, err := mc.operand(mode)
	if err != nil {
		return err
	}
	r.Load(v)
	mc.status.SetZeroNegative(r.Value())
	return nil
}

func (mc *CPU) lda(defn *instructions.Definition) (bool, error) {
	return false, mc.load(&mc.a, defn.AddressingMode)
}

func (mc *CPU) ldx(defn *instructions.Definition) (bool, error) {
	return false, mc.load(&mc.x, defn.AddressingMode)
}

func (mc *CPU) ldy(defn *instructions.Definition) (bool, error) {
	return false, mc.load(&mc.y, defn.AddressingMode)
}

// store the register at the effective address. no flags are affected.
func (mc *CPU) store(r registers.Register, mode instructions.AddressingMode) error {
	address, err := mc.resolve(mode)
	if err != nil {
		return err
	}
	mc.mem.Write(address, r.Value())
	return nil
}

func (mc *CPU) sta(defn *instructions.Definition) (bool, error) {
	return false, mc.store(mc.a, defn.AddressingMode)
}

func (mc *CPU) stx(defn *instructions.Definition) (bool, error) {
	return false, mc.store(mc.x, defn.AddressingMode)
}

func (mc *CPU) sty(defn *instructions.Definition) (bool, error) {
	return false, mc.store(mc.y, defn.AddressingMode)
}

// transfer copies the value to the destination register and applies the
// zero/negative rule.
func (mc *CPU) transfer(dest *registers.Register, value uint8) {
	dest.Load(value)
	mc.status.SetZeroNegative(dest.Value())
}

func (mc *CPU) tax(_ *instructions.Definition) (bool, error) {
	mc.transfer(&mc.x, mc.a.Value())
	return false, nil
}

func (mc *CPU) txa(_ *instructions.Definition) (bool, error) {
	mc.transfer(&mc.a, mc.x.Value())
	return false, nil
}

func (mc *CPU) tay(_ *instructions.Definition) (bool, error) {
	mc.transfer(&mc.y, mc.a.Value())
	return false, nil
}

func (mc *CPU) tya(_ *instructions.Definition) (bool, error) {
	mc.transfer(&mc.a, mc.y.Value())
	return false, nil
}

func (mc *CPU) tsx(_ *instructions.Definition) (bool, error) {
	mc.transfer(&mc.x, mc.sp.Value())
	return false, nil
}

// TXS is the only transfer that doesn't affect the status register.
func (mc *CPU) txs(_ *instructions.Definition) (bool, error) {
	mc.sp.Load(mc.x.Value())
	return false, nil
}

func (mc *CPU) pha(_ *instructions.Definition) (bool, error) {
	mc.push(mc.a.Value())
	return false, nil
}

func (mc *CPU) pla(_ *instructions.Definition) (bool, error) {
	mc.transfer(&mc.a, mc.pop())
	return false, nil
}

// the pushed copy of the status register has both break flags set. the live
// status register is unchanged.
func (mc *CPU) php(_ *instructions.Definition) (bool, error) {
	mc.push(mc.status.Value() | uint8(registers.FlagBreak|registers.FlagBreak2))
	return false, nil
}

func (mc *CPU) plp(_ *instructions.Definition) (bool, error) {
	mc.status.Load(mc.pop())
	mc.status.Break = false
	mc.status.Break2 = true
	return false, nil
}

func (mc *CPU) adc(defn *instructions.Definition) (bool, error) {
	v, err := mc.operand(defn.AddressingMode)
	if err != nil {
		return false, err
	}
	mc.status.Carry, mc.status.Overflow = mc.a.Add(v, mc.status.Carry)
	mc.status.SetZeroNegative(mc.a.Value())
	return false, nil
}

func (mc *CPU) sbc(defn *instructions.Definition) (bool, error) {
	v, err := mc.operand(defn.AddressingMode)
	if err != nil {
		return false, err
	}
	mc.status.Carry, mc.status.Overflow = mc.a.Subtract(v, mc.status.Carry)
	mc.status.SetZeroNegative(mc.a.Value())
	return false, nil
}

func (mc *CPU) and(defn *instructions.Definition) (bool, error) {
	v, err := mc.operand(defn.AddressingMode)
	if err != nil {
		return false, err
	}
	mc.a.AND(v)
	mc.status.Zero = mc.a.IsZero()
	mc.status.SetZeroNegative(mc.a.Value())
	mc.LastResult.Quirk = execution.AndInlineZero
	return false, nil
}

func (mc *CPU) ora(defn *instructions.Definition) (bool, error) {
	v, err := mc.operand(defn.AddressingMode)
	if err != nil {
		return false, err
	}
	mc.a.ORA(v)
	mc.status.SetZeroNegative(mc.a.Value())
	return false, nil
}

func (mc *CPU) eor(defn *instructions.Definition) (bool, error) {
	v, err := mc.operand(defn.AddressingMode)
	if err != nil {
		return false, err
	}
	mc.a.EOR(v)
	mc.status.SetZeroNegative(mc.a.Value())
	return false, nil
}

// modify applies the function to the accumulator or to the value at the
// effective address, depending on the addressing mode. values in memory are
// written back after the function has completed.
func (mc *CPU) modify(mode instructions.AddressingMode, f func(r *registers.Register)) error {
	if mode == instructions.Accumulator {
		f(&mc.a)
		return nil
	}

	address, err := mc.resolve(mode)
	if err != nil {
		return err
	}

	r := registers.NewRegister(mc.mem.Read(address), "M")
	f(&r)
	mc.mem.Write(address, r.Value())

	return nil
}

func (mc *CPU) asl(defn *instructions.Definition) (bool, error) {
	return false, mc.modify(defn.AddressingMode, func(r *registers.Register) {
		mc.status.Carry = r.ASL()
		mc.status.SetZeroNegative(r.Value())
	})
}

// carry is taken from bit 7 of the value, not bit 0.
func (mc *CPU) lsr(defn *instructions.Definition) (bool, error) {
	return false, mc.modify(defn.AddressingMode, func(r *registers.Register) {
		carry := r.IsNegative()
		r.LSR()
		mc.status.Carry = carry
		mc.status.SetZeroNegative(r.Value())
		mc.LastResult.Quirk = execution.LsrHighBitCarry
	})
}

// zero and negative flags are taken from the value before the rotation.
func (mc *CPU) rol(defn *instructions.Definition) (bool, error) {
	return false, mc.modify(defn.AddressingMode, func(r *registers.Register) {
		pre := r.Value()
		mc.status.Carry = r.ROL(mc.status.Carry)
		mc.status.SetZeroNegative(pre)
		mc.LastResult.Quirk = execution.RolPreShiftFlags
	})
}

// zero flag is set if the masked value is not zero.
func (mc *CPU) bit(defn *instructions.Definition) (bool, error) {
	v, err := mc.operand(defn.AddressingMode)
	if err != nil {
		return false, err
	}
	mc.status.Zero = mc.a.Value()&v != 0
	mc.status.Overflow = v&0x40 == 0x40
	mc.status.Negative = v&0x80 == 0x80
	mc.LastResult.Quirk = execution.BitInvertedZero
	return false, nil
}

// increment adds one (or subtracts one if decrement is true) to the register and
// applies the zero/negative rule.
func (mc *CPU) increment(r *registers.Register, decrement bool) {
	if decrement {
		r.Add(0xff, false)
	} else {
		r.Add(1, false)
	}
	mc.status.SetZeroNegative(r.Value())
}

func (mc *CPU) inc(defn *instructions.Definition) (bool, error) {
	return false, mc.modify(defn.AddressingMode, func(r *registers.Register) {
		mc.increment(r, false)
	})
}

func (mc *CPU) dec(defn *instructions.Definition) (bool, error) {
	return false, mc.modify(defn.AddressingMode, func(r *registers.Register) {
		mc.increment(r, true)
	})
}

func (mc *CPU) inx(_ *instructions.Definition) (bool, error) {
	mc.increment(&mc.x, false)
	return false, nil
}

func (mc *CPU) iny(_ *instructions.Definition) (bool, error) {
	mc.increment(&mc.y, false)
	return false, nil
}

func (mc *CPU) dex(_ *instructions.Definition) (bool, error) {
	mc.increment(&mc.x, true)
	return false, nil
}

func (mc *CPU) dey(_ *instructions.Definition) (bool, error) {
	mc.increment(&mc.y, true)
	return false, nil
}

// compare the operand with the register. carry is set if the operand is less
// than or equal to the register. the zero and negative flags are taken from
// the register value minus one.
func (mc *CPU) compare(r registers.Register, mode instructions.AddressingMode) error {
	v, err := mc.operand(mode)
	if err != nil {
		return err
	}
	mc.status.Carry = v <= r.Value()
	mc.status.SetZeroNegative(r.Value() - 1)
	mc.LastResult.Quirk = execution.CompareDecrementFlags
	return nil
}

func (mc *CPU) cmp(defn *instructions.Definition) (bool, error) {
	return false, mc.compare(mc.a, defn.AddressingMode)
}

func (mc *CPU) cpx(defn *instructions.Definition) (bool, error) {
	return false, mc.compare(mc.x, defn.AddressingMode)
}

func (mc *CPU) cpy(defn *instructions.Definition) (bool, error) {
	return false, mc.compare(mc.y, defn.AddressingMode)
}

// flag returns a handler that sets or clears a single status flag.
func flag(f registers.Flag, set bool) handler {
	return func(mc *CPU, _ *instructions.Definition) (bool, error) {
		mc.status.Set(f, set)
		return false, nil
	}
}

// branch returns a handler that branches if the status flag is in the
// required state. the offset is relative to the address following the
// instruction.
func branch(f registers.Flag, set bool) handler {
	return func(mc *CPU, defn *instructions.Definition) (bool, error) {
		if mc.status.Get(f) != set {
			return false, nil
		}

		address, err := mc.resolve(defn.AddressingMode)
		if err != nil {
			return false, err
		}

		offset := int8(mc.mem.Read(address))
		mc.pc.Load(mc.pc.Address() + 1 + uint16(offset))

		return true, nil
	}
}

func (mc *CPU) jmp(defn *instructions.Definition) (bool, error) {
	address, err := mc.resolve(defn.AddressingMode)
	if err != nil {
		return false, err
	}
	mc.pc.Load(address)
	return true, nil
}

// the address pushed is the address of the last byte of the JSR instruction.
func (mc *CPU) jsr(defn *instructions.Definition) (bool, error) {
	address, err := mc.resolve(defn.AddressingMode)
	if err != nil {
		return false, err
	}
	mc.push16(mc.pc.Address() + 1)
	mc.pc.Load(address)
	return true, nil
}

func (mc *CPU) rts(_ *instructions.Definition) (bool, error) {
	mc.pc.Load(mc.pop16() + 1)
	return true, nil
}
