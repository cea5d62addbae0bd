package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (f *File) NodePos() Position    { return f.Pos }
func (f *File) NodeEndPos() Position { return f.EndPos }
func (*File) NodeType() NodeType     { return FILE }

func (r *Rule) NodePos() Position    { return r.Pos }
func (r *Rule) NodeEndPos() Position { return r.EndPos }
func (*Rule) NodeType() NodeType     { return RULE }

func (s *Selector) NodePos() Position    { return s.Pos }
func (s *Selector) NodeEndPos() Position { return s.EndPos }
func (*Selector) NodeType() NodeType     { return SELECTOR }

func (t *Trait) NodePos() Position    { return t.Pos }
func (t *Trait) NodeEndPos() Position { return t.EndPos }
func (*Trait) NodeType() NodeType     { return TRAIT }

func (k *Key) NodePos() Position    { return k.Pos }
func (k *Key) NodeEndPos() Position { return k.EndPos }
func (*Key) NodeType() NodeType     { return KEY }

func (rb *RuleBody) NodePos() Position    { return rb.Pos }
func (rb *RuleBody) NodeEndPos() Position { return rb.EndPos }
func (*RuleBody) NodeType() NodeType      { return RULE_BODY }

func (kv *KeyValue) NodePos() Position    { return kv.Pos }
func (kv *KeyValue) NodeEndPos() Position { return kv.EndPos }
func (*KeyValue) NodeType() NodeType      { return KEY_VALUE }

func (pc *PrecedenceChain) NodePos() Position    { return pc.Pos }
func (pc *PrecedenceChain) NodeEndPos() Position { return pc.EndPos }
func (*PrecedenceChain) NodeType() NodeType      { return PRECEDENCE_CHAIN }

func (pn *PrecedenceChainNode) NodePos() Position    { return pn.Pos }
func (pn *PrecedenceChainNode) NodeEndPos() Position { return pn.EndPos }
func (*PrecedenceChainNode) NodeType() NodeType      { return PRECEDENCE_CHAIN_NODE }

func (s *Simple) NodePos() Position    { return s.Pos }
func (s *Simple) NodeEndPos() Position { return s.EndPos }
func (*Simple) NodeType() NodeType     { return SIMPLE_VALUE }

func (vl *ValueList) NodePos() Position    { return vl.Pos }
func (vl *ValueList) NodeEndPos() Position { return vl.EndPos }
func (*ValueList) NodeType() NodeType      { return VALUE_LIST }

func (wl *WrappedList) NodePos() Position    { return wl.Pos }
func (wl *WrappedList) NodeEndPos() Position { return wl.EndPos }
func (*WrappedList) NodeType() NodeType      { return WRAPPED_LIST }

func (m *Map) NodePos() Position    { return m.Pos }
func (m *Map) NodeEndPos() Position { return m.EndPos }
func (*Map) NodeType() NodeType     { return MAP_VALUE }

func (me *MapEntry) NodePos() Position    { return me.Pos }
func (me *MapEntry) NodeEndPos() Position { return me.EndPos }
func (*MapEntry) NodeType() NodeType      { return MAP_ENTRY }

func (b *Binding) NodePos() Position    { return b.Pos }
func (b *Binding) NodeEndPos() Position { return b.EndPos }
func (*Binding) NodeType() NodeType     { return BINDING }

func (ls *LocalizedString) NodePos() Position    { return ls.Pos }
func (ls *LocalizedString) NodeEndPos() Position { return ls.EndPos }
func (*LocalizedString) NodeType() NodeType      { return LOCALIZED_STRING }

func (e *Expression) NodePos() Position    { return e.Pos }
func (e *Expression) NodeEndPos() Position { return e.EndPos }
func (*Expression) NodeType() NodeType     { return EXPRESSION }
