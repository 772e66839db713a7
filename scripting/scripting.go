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

package scripting

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError   = "scripting: %v"
	NoStepFunc    = "scripting: script does not define a step() function"
	ScriptStopped = "scripting: script stopped execution at %#04x"
)

// the name of the function the script must define.
const stepFunc = "step"

// Script is a Lua program that is called after every instruction. The script
// must define a global function called step(), which receives a table
// describing the CPU registers and the most recent instruction:
//
//	function step(cpu)
//		if cpu.a == 0x10 then
//			print(string.format("A is $10 at $%04x", cpu.pc))
//			return false
//		end
//	end
//
// Returning false from step() stops execution. The table has the fields: pc,
// a, x, y, sp, status (number), flags (string), address (of the most recent
// instruction) and instruction (the disassembled instruction).
//
// The following functions are available to the script in addition to the Lua
// base library:
//
//	peek(address)        returns the value at address
//	poke(address, value) writes value to address
//	log(message)         adds message to the central logger
//
// The base print() function writes to the output given to the Script.
type Script struct {
	L      *lua.LState
	output io.Writer

	// the CPU being observed. only valid for the duration of the observer call
	mc *cpu.CPU

	step lua.LValue
}

// NewScript compiles and runs the Lua source. Any top-level statements in the
// source are run immediately. The name is used in error messages.
func NewScript(name string, source io.Reader, output io.Writer) (*Script, error) {
	scr := &Script{
		L:      lua.NewState(),
		output: output,
	}

	scr.L.SetGlobal("peek", scr.L.NewFunction(scr.peek))
	scr.L.SetGlobal("poke", scr.L.NewFunction(scr.poke))
	scr.L.SetGlobal("log", scr.L.NewFunction(scr.log))
	scr.L.SetGlobal("print", scr.L.NewFunction(scr.print))

	fn, err := scr.L.Load(source, name)
	if err != nil {
		scr.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	scr.L.Push(fn)
	if err := scr.L.PCall(0, lua.MultRet, nil); err != nil {
		scr.Close()
		return nil, curated.Errorf(ScriptError, err)
	}

	scr.step = scr.L.GetGlobal(stepFunc)
	if scr.step.Type() != lua.LTFunction {
		scr.Close()
		return nil, curated.Errorf(NoStepFunc)
	}

	return scr, nil
}

// Close the Lua state. The script can not be used after it has been closed.
func (scr *Script) Close() {
	scr.L.Close()
}

// Observer is suitable for use with the CPU's Run() and RunFor() functions.
func (scr *Script) Observer(mc *cpu.CPU) error {
	scr.mc = mc
	defer func() {
		scr.mc = nil
	}()

	err := scr.L.CallByParam(lua.P{
		Fn:      scr.step,
		NRet:    1,
		Protect: true,
	}, scr.registers(mc))
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}

	ret := scr.L.Get(-1)
	scr.L.Pop(1)
	if ret == lua.LFalse {
		return curated.Errorf(ScriptStopped, mc.LastResult.Address)
	}

	return nil
}

func (scr *Script) registers(mc *cpu.CPU) *lua.LTable {
	tbl := scr.L.NewTable()
	tbl.RawSetString("pc", lua.LNumber(mc.PC()))
	tbl.RawSetString("a", lua.LNumber(mc.A()))
	tbl.RawSetString("x", lua.LNumber(mc.X()))
	tbl.RawSetString("y", lua.LNumber(mc.Y()))
	tbl.RawSetString("sp", lua.LNumber(mc.SP()))
	tbl.RawSetString("status", lua.LNumber(mc.Status().Value()))
	tbl.RawSetString("flags", lua.LString(mc.Status().String()))
	tbl.RawSetString("address", lua.LNumber(mc.LastResult.Address))
	if mc.LastResult.Defn != nil {
		tbl.RawSetString("instruction", lua.LString(strings.TrimSpace(fmt.Sprintf("%s %s",
			mc.LastResult.Defn.Mnemonic(), mc.LastResult.Operand()))))
	}
	return tbl
}

func (scr *Script) checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(v)
}

func (scr *Script) peek(L *lua.LState) int {
	address := scr.checkAddress(L, 1)
	if scr.mc == nil {
		L.RaiseError("peek() can only be used in step()")
	}
	L.Push(lua.LNumber(scr.mc.Read(address)))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := scr.checkAddress(L, 1)
	value := L.CheckInt(2)
	if value < 0 || value > 0xff {
		L.ArgError(2, "value out of range")
	}
	if scr.mc == nil {
		L.RaiseError("poke() can only be used in step()")
	}
	scr.mc.Write(address, uint8(value))
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	io.WriteString(scr.output, strings.Join(s, "\t"))
	io.WriteString(scr.output, "\n")
	return 0
}
