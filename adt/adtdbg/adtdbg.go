/*
Package adtdbg implements helpers to debug ADT declarations and instances.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package adtdbg

import (
	"fmt"

	"github.com/npillmayer/algebra/adt"
	tp "github.com/xlab/treeprint"
)

// Declaration prints the variants and fields of t as a tree:
//
//     (geo) Shape
//     ├── Circle
//     │   └── radius
//     └── Empty
//
func Declaration(t *adt.Type) string {
	p := tp.New()
	p.SetValue(t.String())
	for _, v := range t.Variants() {
		if len(v.Fields) == 0 {
			p.AddNode(v.Name)
			continue
		}
		branch := p.AddBranch(v.Name)
		for _, f := range v.Fields {
			branch.AddNode(f)
		}
	}
	return p.String()
}

// Instance prints an instance as a tree, descending into field values which
// are instances themselves. v has to be an *adt.Instance or implement
// adt.Instancer; otherwise v is printed with %v.
func Instance(v any) string {
	inst := instanceOf(v)
	if inst == nil {
		return fmt.Sprintf("%v\n", v)
	}
	p := tp.New()
	p.SetValue(inst.TypeTag())
	ppi(p, inst)
	return p.String()
}

func ppi(p tp.Tree, inst *adt.Instance) {
	for _, f := range inst.Fields() {
		if nested := instanceOf(f.Value); nested != nil {
			branch := p.AddMetaBranch(f.Name, nested.TypeTag())
			ppi(branch, nested)
			continue
		}
		p.AddMetaNode(f.Name, fmt.Sprintf("%#v", f.Value))
	}
}

func instanceOf(v any) *adt.Instance {
	if i, ok := v.(adt.Instancer); ok {
		return i.Instance()
	}
	return nil
}
