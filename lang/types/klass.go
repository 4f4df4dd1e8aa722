package types

import (
	"github.com/dolthub/swiss"
	"github.com/madeso/lox-go/lang/ast"
)

// Klass is a first-class class object: name, optional superclass, its
// instance and static method tables, and its declared field names.
type Klass struct {
	Name          string
	Super         *Klass
	Methods       *swiss.Map[string, *Function]
	StaticMethods *swiss.Map[string, *Function]
	// Fields is the set of declared field names, used to reject writes to
	// undeclared fields. Presence in the map (regardless of value) means
	// declared.
	Fields *swiss.Map[string, bool]

	// FieldDecls and FieldEnv let lang/interp evaluate this class's own
	// `public var name [= init];` members at instantiation time, in the
	// environment active when the class was declared.
	FieldDecls []*ast.VarStmt
	FieldEnv   *Environment
}

func NewKlass(name string, super *Klass) *Klass {
	return &Klass{
		Name:          name,
		Super:         super,
		Methods:       swiss.NewMap[string, *Function](4),
		StaticMethods: swiss.NewMap[string, *Function](2),
		Fields:        swiss.NewMap[string, bool](4),
	}
}

func (k *Klass) String() string { return "<class " + k.Name + ">" }
func (k *Klass) Type() string   { return "class" }
func (k *Klass) Truth() bool    { return true }

// FindMethod walks k and its superclass chain looking for an instance method
// named name.
func (k *Klass) FindMethod(name string) (*Function, bool) {
	for c := k; c != nil; c = c.Super {
		if fn, ok := c.Methods.Get(name); ok {
			return fn, true
		}
	}
	return nil, false
}

// FindStaticMethod walks k and its superclass chain looking for a static
// method named name, so a subclass can be called as if it exposed its
// parent's static members.
func (k *Klass) FindStaticMethod(name string) (*Function, bool) {
	for c := k; c != nil; c = c.Super {
		if fn, ok := c.StaticMethods.Get(name); ok {
			return fn, true
		}
	}
	return nil, false
}

// HasField reports whether name is declared on k or any ancestor.
func (k *Klass) HasField(name string) bool {
	for c := k; c != nil; c = c.Super {
		if _, ok := c.Fields.Get(name); ok {
			return true
		}
	}
	return false
}

// Instance is a language-object instance: its class and its field values.
type Instance struct {
	Class  *Klass
	Fields *swiss.Map[string, Value]
}

func NewInstance(class *Klass) *Instance {
	return &Instance{Class: class, Fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return "<instance " + i.Class.Name + ">" }
func (i *Instance) Type() string   { return "instance" }
func (i *Instance) Truth() bool    { return true }
