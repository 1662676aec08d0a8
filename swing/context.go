package swing

// Context is one frame of the evaluation tree. Parent and ParentEntryPos
// record where the frame was entered from and are walked to build a
// traceback.
type Context struct {
	DisplayName    string
	Parent         *Context
	ParentEntryPos *Position
}

func NewContext(name string) *Context {
	return &Context{DisplayName: name}
}

// Enter returns a child frame entered at pos.
func (c *Context) Enter(name string, pos Position) *Context {
	return &Context{DisplayName: name, Parent: c, ParentEntryPos: &pos}
}

// Depth counts the frames from c up to the root, inclusive.
func (c *Context) Depth() int {
	n := 0
	for ctx := c; ctx != nil; ctx = ctx.Parent {
		n++
	}
	return n
}
