package base

// Operands says how an instruction's operands are rendered after its
// mnemonic.
type Operands uint8

const (
	// OperandsFormat renders the operands the instruction's format defines.
	OperandsFormat Operands = iota
	// OperandsShift renders an I-format immediate as a 5-bit shift amount.
	OperandsShift
	// OperandsNone renders the mnemonic alone.
	OperandsNone
)

type selector uint8

const (
	selFunct3 selector = 1 << iota
	selFunct7
	selConst
)

// signature is the set of fixed fields that identify an operation within
// its major opcode.
type signature struct {
	opcode Opcode
	sel    selector
	funct3 uint8
	funct7 uint8
	cst    uint32
}

// Op is one named operation of the base instruction set.
type Op struct {
	Name     string
	Opcode   Opcode
	Funct3   uint8
	Funct7   uint8
	Const    uint32
	Operands Operands
	Standard Standard

	sel selector
}

func (o *Op) signature() signature {
	sig := signature{opcode: o.Opcode, sel: o.sel}
	if o.sel&selFunct3 != 0 {
		sig.funct3 = o.Funct3
	}
	if o.sel&selFunct7 != 0 {
		sig.funct7 = o.Funct7
	}
	if o.sel&selConst != 0 {
		sig.cst = o.Const
	}
	return sig
}

func opOnly(std Standard, name string, op Opcode) *Op {
	return &Op{Name: name, Opcode: op, Standard: std}
}

func opF3(std Standard, name string, op Opcode, f3 uint8) *Op {
	return &Op{Name: name, Opcode: op, Funct3: f3, Standard: std, sel: selFunct3}
}

func opF7(std Standard, name string, op Opcode, f3, f7 uint8) *Op {
	return &Op{Name: name, Opcode: op, Funct3: f3, Funct7: f7, Standard: std, sel: selFunct3 | selFunct7}
}

func opShift(std Standard, name string, op Opcode, f3, f7 uint8) *Op {
	o := opF7(std, name, op, f3, f7)
	o.Operands = OperandsShift
	return o
}

// opConst is an I-format operation identified by its whole immediate.
func opConst(std Standard, name string, op Opcode, f3 uint8, imm uint32) *Op {
	return &Op{Name: name, Opcode: op, Funct3: f3, Const: imm, Operands: OperandsNone, Standard: std, sel: selFunct3 | selConst}
}

// amo operations are selected by funct5, the top bits of funct7.
func amo(name string, funct5 uint8) *Op {
	return opF7(RV32A, name, 0x2F, 0b010, funct5<<2)
}

var allOps = []*Op{
	opOnly(RV32I, "lui", 0x37),
	opOnly(RV32I, "auipc", 0x17),
	opOnly(RV32I, "jal", 0x6F),
	opF3(RV32I, "jalr", 0x67, 0b000),

	opF3(RV32I, "beq", 0x63, 0b000),
	opF3(RV32I, "bne", 0x63, 0b001),
	opF3(RV32I, "blt", 0x63, 0b100),
	opF3(RV32I, "bge", 0x63, 0b101),
	opF3(RV32I, "bltu", 0x63, 0b110),
	opF3(RV32I, "bgeu", 0x63, 0b111),

	opF3(RV32I, "lb", 0x03, 0b000),
	opF3(RV32I, "lh", 0x03, 0b001),
	opF3(RV32I, "lw", 0x03, 0b010),
	opF3(RV32I, "lbu", 0x03, 0b100),
	opF3(RV32I, "lhu", 0x03, 0b101),

	opF3(RV32I, "sb", 0x23, 0b000),
	opF3(RV32I, "sh", 0x23, 0b001),
	opF3(RV32I, "sw", 0x23, 0b010),

	opF3(RV32I, "addi", 0x13, 0b000),
	opF3(RV32I, "slti", 0x13, 0b010),
	opF3(RV32I, "sltiu", 0x13, 0b011),
	opF3(RV32I, "xori", 0x13, 0b100),
	opF3(RV32I, "ori", 0x13, 0b110),
	opF3(RV32I, "andi", 0x13, 0b111),
	opShift(RV32I, "slli", 0x13, 0b001, 0x00),
	opShift(RV32I, "srli", 0x13, 0b101, 0x00),
	opShift(RV32I, "srai", 0x13, 0b101, 0x20),

	opF7(RV32I, "add", 0x33, 0b000, 0x00),
	opF7(RV32I, "sub", 0x33, 0b000, 0x20),
	opF7(RV32I, "sll", 0x33, 0b001, 0x00),
	opF7(RV32I, "slt", 0x33, 0b010, 0x00),
	opF7(RV32I, "sltu", 0x33, 0b011, 0x00),
	opF7(RV32I, "xor", 0x33, 0b100, 0x00),
	opF7(RV32I, "srl", 0x33, 0b101, 0x00),
	opF7(RV32I, "sra", 0x33, 0b101, 0x20),
	opF7(RV32I, "or", 0x33, 0b110, 0x00),
	opF7(RV32I, "and", 0x33, 0b111, 0x00),

	opF3(RV32I, "fence", 0x0F, 0b000),
	opConst(RV32I, "fence.i", 0x0F, 0b001, 0),

	opConst(RV32I, "ecall", 0x73, 0b000, 0x000),
	opConst(RV32I, "ebreak", 0x73, 0b000, 0x001),
	opF3(RV32I, "csrrw", 0x73, 0b001),
	opF3(RV32I, "csrrs", 0x73, 0b010),
	opF3(RV32I, "csrrc", 0x73, 0b011),
	opF3(RV32I, "csrrwi", 0x73, 0b101),
	opF3(RV32I, "csrrsi", 0x73, 0b110),
	opF3(RV32I, "csrrci", 0x73, 0b111),

	opConst(RV32S, "sret", 0x73, 0b000, 0x102),
	opConst(RV32S, "wfi", 0x73, 0b000, 0x105),
	opConst(RV32S, "mret", 0x73, 0b000, 0x302),

	opF7(RV32M, "mul", 0x33, 0b000, 0x01),
	opF7(RV32M, "mulh", 0x33, 0b001, 0x01),
	opF7(RV32M, "mulhsu", 0x33, 0b010, 0x01),
	opF7(RV32M, "mulhu", 0x33, 0b011, 0x01),
	opF7(RV32M, "div", 0x33, 0b100, 0x01),
	opF7(RV32M, "divu", 0x33, 0b101, 0x01),
	opF7(RV32M, "rem", 0x33, 0b110, 0x01),
	opF7(RV32M, "remu", 0x33, 0b111, 0x01),

	amo("lr.w", 0b00010),
	amo("sc.w", 0b00011),
	amo("amoswap.w", 0b00001),
	amo("amoadd.w", 0b00000),
	amo("amoxor.w", 0b00100),
	amo("amoand.w", 0b01100),
	amo("amoor.w", 0b01000),
	amo("amomin.w", 0b10000),
	amo("amomax.w", 0b10100),
	amo("amominu.w", 0b11000),
	amo("amomaxu.w", 0b11100),
}

// OpcodeTable maps decoded base instructions to their operations, limited
// to a chosen set of standards.
type OpcodeTable struct {
	formats map[Opcode]Format
	aqrl    map[Opcode]bool
	ops     map[signature]*Op
}

// NewOpcodeTable builds a table holding the operations of the given
// standards. With no standards it holds every known operation.
//
// A major opcode is only known to the table if at least one of its
// operations is included.
func NewOpcodeTable(stds ...Standard) *OpcodeTable {
	want := Standards{}
	for _, s := range stds {
		want.Add(s)
	}

	t := &OpcodeTable{
		formats: make(map[Opcode]Format),
		aqrl:    make(map[Opcode]bool),
		ops:     make(map[signature]*Op),
	}
	for _, o := range allOps {
		if len(want) > 0 && !want.Has(o.Standard) {
			continue
		}
		m, ok := majorOpcode(o.Opcode)
		if !ok {
			panic("operation " + o.Name + " has unknown major opcode " + o.Opcode.String())
		}
		t.formats[m.Num] = m.Format
		t.aqrl[m.Num] = m.AQRL
		t.ops[o.signature()] = o
	}
	return t
}

// Format returns the base format of the given major opcode.
func (t *OpcodeTable) Format(op Opcode) (Format, bool) {
	f, ok := t.formats[op]
	return f, ok
}

// Ops returns the operations in the table.
func (t *OpcodeTable) Ops() []*Op {
	var ret []*Op
	for _, o := range allOps {
		if t.ops[o.signature()] == o {
			ret = append(ret, o)
		}
	}
	return ret
}

// Lookup finds the operation for a decoded instruction, trying the most
// specific signature its format allows first.
func (t *OpcodeTable) Lookup(in Instruction) (*Op, bool) {
	for _, sig := range t.candidates(in) {
		if o, ok := t.ops[sig]; ok {
			return o, true
		}
	}
	return nil, false
}

// Mnemonic returns the name of the operation for a decoded instruction.
func (t *OpcodeTable) Mnemonic(in Instruction) (string, bool) {
	o, ok := t.Lookup(in)
	if !ok {
		return "", false
	}
	return o.Name, true
}

func (t *OpcodeTable) candidates(in Instruction) []signature {
	op := in.Opcode
	switch in.Format {
	case R:
		sigs := []signature{{opcode: op, sel: selFunct3 | selFunct7, funct3: in.Funct3, funct7: in.Funct7}}
		if t.aqrl[op] {
			sigs = append(sigs, signature{opcode: op, sel: selFunct3 | selFunct7, funct3: in.Funct3, funct7: in.Funct7 &^ 0b11})
		}
		return append(sigs,
			signature{opcode: op, sel: selFunct3, funct3: in.Funct3},
			signature{opcode: op},
		)
	case I:
		return []signature{
			{opcode: op, sel: selFunct3 | selConst, funct3: in.Funct3, cst: in.Imm},
			{opcode: op, sel: selFunct3 | selFunct7, funct3: in.Funct3, funct7: uint8(in.Imm >> 5)},
			{opcode: op, sel: selFunct3, funct3: in.Funct3},
			{opcode: op},
		}
	case S, SB:
		return []signature{
			{opcode: op, sel: selFunct3, funct3: in.Funct3},
			{opcode: op},
		}
	default:
		return []signature{{opcode: op}}
	}
}
