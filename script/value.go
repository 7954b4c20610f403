package script

import (
	"go.starlark.net/starlark"

	"github.com/ezrec/prism/asm"
)

// register is a Starlark value naming a Prism register.
type register struct {
	reg asm.Register
}

var _ starlark.Value = register{}

func (r register) String() string        { return r.reg.String() }
func (r register) Type() string          { return "register" }
func (r register) Freeze()               {}
func (r register) Truth() starlark.Bool  { return starlark.True }
func (r register) Hash() (uint32, error) { return uint32(r.reg.Code)<<8 | uint32(r.reg.Index), nil }

// delay is a Starlark value naming a delay time unit.
type delay struct {
	code asm.DelayCode
}

var _ starlark.Value = delay{}

func (d delay) String() string        { return d.code.String() }
func (d delay) Type() string          { return "delay" }
func (d delay) Freeze()               {}
func (d delay) Truth() starlark.Bool  { return starlark.True }
func (d delay) Hash() (uint32, error) { return uint32(d.code), nil }

// Predeclared register and delay names.
var constants = starlark.StringDict{
	"SC": register{asm.SC},
	"SF": register{asm.SF},
	"PC": register{asm.PC},
	"PP": register{asm.PP},
	"RV": register{asm.RV},
	"R0": register{asm.R0},
	"R1": register{asm.R1},
	"PO": register{asm.PO},

	"MS":  delay{asm.MS},
	"SEC": delay{asm.SEC},
	"MIN": delay{asm.MIN},
	"HRS": delay{asm.HRS},
}
