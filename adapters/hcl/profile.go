// Package hcl reads wage profiles written in HCL:
//
//	wage {
//	  value  = 160
//	  prefix = "day"
//	  unit   = 8
//	}
package hcl

import (
	"math"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"wageman/core/input"
	"wageman/core/wage"
	"wageman/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "wage"},
	},
}

var wageSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "value", Required: true},
		{Name: "prefix", Required: true},
		{Name: "unit", Required: true},
	},
}

// LoadProfile reads and parses the profile at path.
func LoadProfile(path string) (wage.Wage, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return wage.Wage{}, errors.Parsing("read wage profile "+path, err).WithContext("file", path)
	}
	return ParseProfile(src, path)
}

// ParseProfile parses profile source. filename is only used in messages.
func ParseProfile(src []byte, filename string) (wage.Wage, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return wage.Wage{}, diagError(diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return wage.Wage{}, diagError(diags)
	}
	if n := len(content.Blocks); n != 1 {
		return wage.Wage{}, errors.Newf(errors.TypeParsing, "%s: expected exactly one wage block, found %d", filename, n).
			WithContext("file", filename)
	}

	block := content.Blocks[0]
	attrs, diags := block.Body.Content(wageSchema)
	if diags.HasErrors() {
		return wage.Wage{}, diagError(diags)
	}

	value, err := numberAttr(attrs.Attributes["value"])
	if err != nil {
		return wage.Wage{}, err
	}

	prefixText, err := textAttr(attrs.Attributes["prefix"])
	if err != nil {
		return wage.Wage{}, err
	}
	prefix, err := input.ParsePrefix(prefixText)
	if err != nil {
		return wage.Wage{}, attrError(attrs.Attributes["prefix"], err.Error())
	}

	unitText, err := textAttr(attrs.Attributes["unit"])
	if err != nil {
		return wage.Wage{}, err
	}
	unit, err := input.ParseUnit(unitText)
	if err != nil {
		return wage.Wage{}, attrError(attrs.Attributes["unit"], err.Error())
	}

	return wage.New(value, prefix, unit), nil
}

func evalAttr(attr *hcl.Attribute) (cty.Value, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diagError(diags)
	}
	if val.IsNull() || !val.IsKnown() {
		return cty.NilVal, attrError(attr, "must have a value")
	}
	return val, nil
}

func numberAttr(attr *hcl.Attribute) (float64, error) {
	val, err := evalAttr(attr)
	if err != nil {
		return 0, err
	}
	if val.Type() != cty.Number {
		return 0, attrError(attr, "must be a number")
	}
	f, _ := val.AsBigFloat().Float64()
	if math.IsInf(f, 0) {
		return 0, attrError(attr, "is out of range")
	}
	return f, nil
}

// textAttr renders a string or number attribute as text.
func textAttr(attr *hcl.Attribute) (string, error) {
	val, err := evalAttr(attr)
	if err != nil {
		return "", err
	}
	switch val.Type() {
	case cty.String:
		return val.AsString(), nil
	case cty.Number:
		return val.AsBigFloat().Text('f', -1), nil
	}
	return "", attrError(attr, "must be a string or a number")
}

func attrError(attr *hcl.Attribute, msg string) *errors.Error {
	return errors.Newf(errors.TypeParsing, "%s: %s %s", attr.Range.String(), attr.Name, msg).
		WithContext("file", attr.Range.Filename).
		WithContext("line", attr.Range.Start.Line)
}

// diagError reports diags as one parsing error. The message already holds
// the range, summary and detail of the first error diagnostic.
func diagError(diags hcl.Diagnostics) *errors.Error {
	err := errors.New(errors.TypeParsing, diags.Error())
	for _, diag := range diags {
		if diag.Severity == hcl.DiagError && diag.Subject != nil {
			err.WithContext("file", diag.Subject.Filename).WithContext("line", diag.Subject.Start.Line)
			break
		}
	}
	return err
}
