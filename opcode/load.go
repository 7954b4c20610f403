package opcode

import (
	"io"

	"github.com/BurntSushi/toml"
)

// tableFile is the TOML layout of a registry file.
//
//	name = "prism"
//
//	[instructions]
//	nop = 0
//	begin = 1
//
//	[registers]
//	sc = 0
//	general = 8
//
//	[delays]
//	ms = 0
//
//	[flags]
//	a_indirect = 1
//	b_indirect = 2
type tableFile struct {
	Name         string           `toml:"name"`
	Instructions map[string]uint8 `toml:"instructions"`
	Registers    map[string]uint8 `toml:"registers"`
	Delays       map[string]uint8 `toml:"delays"`
	Flags        map[string]uint8 `toml:"flags"`
}

type tag interface {
	~int
	String() string
}

// fill copies a named section into dst, indexed by tag.
func fill[T tag](table string, section string, entries map[string]uint8, dst []uint8) (err error) {
	known := make(map[string]bool, len(dst))
	for n := range dst {
		name := T(n).String()
		known[name] = true
		value, ok := entries[name]
		if !ok {
			return &ErrTable{Table: table, Entry: section + "." + name, Err: ErrEntryMissing}
		}
		dst[n] = value
	}

	for name := range entries {
		if !known[name] {
			return &ErrTable{Table: table, Entry: section + "." + name, Err: ErrEntryUnknown}
		}
	}

	return
}

// LoadTable reads a registry table from a TOML document and validates it.
func LoadTable(input io.Reader) (t *Table, err error) {
	var file tableFile

	md, err := toml.NewDecoder(input).Decode(&file)
	if err != nil {
		return
	}

	name := file.Name
	if len(name) == 0 {
		name = "unnamed"
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		err = &ErrTable{Table: name, Entry: undecoded[0].String(), Err: ErrEntryUnknown}
		return
	}

	table := &Table{Name: name}

	err = fill[Code](name, "instructions", file.Instructions, table.Opcodes[:])
	if err != nil {
		return
	}
	err = fill[Reg](name, "registers", file.Registers, table.Registers[:])
	if err != nil {
		return
	}
	err = fill[Delay](name, "delays", file.Delays, table.Delays[:])
	if err != nil {
		return
	}
	err = fill[Flag](name, "flags", file.Flags, table.Flags[:])
	if err != nil {
		return
	}

	err = table.Validate()
	if err != nil {
		return
	}

	t = table

	return
}
