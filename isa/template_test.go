package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTemplate(t *testing.T) {
	for _, tt := range []struct {
		text string
		want Template
	}{
		{
			text: "c.nop",
			want: Template{Text("c.nop")},
		},
		{
			text: "mv rd, rs1",
			want: Template{Text("mv "), FieldRef("rd"), Text(", "), FieldRef("rs1")},
		},
		{
			text: "c.sw rs1, imm (rs2)",
			want: Template{Text("c.sw "), FieldRef("rs1"), Text(", "), FieldRef("imm"), Text(" ("), FieldRef("rs2"), Text(")")},
		},
		{
			text: "<illegal>",
			want: Template{Text("<illegal>")},
		},
		{
			text: "fence.i",
			want: Template{Text("fence.i")},
		},
		{
			text: "c.lw rd, imm(rs1)",
			want: Template{Text("c.lw "), FieldRef("rd"), Text(", "), FieldRef("imm"), Text("("), FieldRef("rs1"), Text(")")},
		},
		{
			text: "",
			want: nil,
		},
	} {
		t.Run(tt.text, func(t *testing.T) {
			got := ParseTemplate(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.String())
		})
	}
}

func TestTemplateFields(t *testing.T) {
	assert.Equal(t, []string{"rd", "imm", "rs1"}, ParseTemplate("c.lw rd, imm(rs1)").Fields())
	assert.Empty(t, ParseTemplate("c.ebreak").Fields())
}

func TestRender(t *testing.T) {
	reg := ArgIntReg.Formatter(5)
	for _, tt := range []struct {
		desc       string
		text       string
		fields     Fields
		formatters Formatters
		want       string
	}{
		{
			desc: "plain text",
			text: "c.nop",
			want: "c.nop",
		},
		{
			desc:   "default hex",
			text:   "c.j imm",
			fields: Fields{"imm": 0xaaa},
			want:   "c.j 0xAAA",
		},
		{
			desc:       "formatter",
			text:       "c.mv rd, rs2",
			fields:     Fields{"rd": 5, "rs2": 31},
			formatters: Formatters{"rd": reg, "rs2": reg},
			want:       "c.mv x5, x31",
		},
		{
			desc:   "unresolved",
			text:   "c.addi rd, imm",
			fields: Fields{"imm": 1},
			want:   "c.addi ****, 0x1",
		},
		{
			desc:       "formatter for absent field",
			text:       "c.jr rs1",
			formatters: Formatters{"rs1": reg},
			want:       "c.jr ****",
		},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(ParseTemplate(tt.text), tt.fields, tt.formatters))
		})
	}
}

func TestArgTypeFormatter(t *testing.T) {
	for _, tt := range []struct {
		ty    ArgType
		width uint
		v     uint32
		want  string
	}{
		{ArgIntReg, 5, 0, "x0"},
		{ArgIntReg, 5, 31, "x31"},
		{ArgCompressedReg, 3, 0, "x8"},
		{ArgCompressedReg, 3, 7, "x15"},
		{ArgUnsignedImmediate, 8, 0xfc, "0xFC"},
		{ArgGeneral, 1, 1, "0x1"},
		{ArgSignedImmediate, 6, 0x3f, "-0x1"},
		{ArgSignedImmediate, 6, 0x1f, "0x1F"},
		{ArgOffset, 12, 0xffe, "-0x2"},
		{ArgOffset, 12, 0x7fe, "0x7FE"},
		{ArgSignedImmediate, 32, 0x80000000, "-0x80000000"},
	} {
		assert.Equal(t, tt.want, tt.ty.Formatter(tt.width)(tt.v), "%s/%d %#x", tt.ty, tt.width, tt.v)
	}
}
