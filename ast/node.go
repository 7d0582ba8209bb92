package ast

type (
	// Node is implemented by every expression and statement.
	Node interface {
		_node()
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		_stmt()
	}

	// Target is an expression that may appear on the left side of an assignment.
	Target interface {
		Expr
		_target()
	}
)

func (*BooleanLiteral) _node()        {}
func (*NullLiteral) _node()           {}
func (*IntLiteral) _node()            {}
func (*DoubleLiteral) _node()         {}
func (*DecimalLiteral) _node()        {}
func (*StringLiteral) _node()         {}
func (*RegExpLiteral) _node()         {}
func (*Identifier) _node()            {}
func (*ThisExpression) _node()        {}
func (*MemberExpression) _node()      {}
func (*IndexExpression) _node()       {}
func (*RawExpression) _node()         {}
func (*ArrayLiteral) _node()          {}
func (*ObjectLiteral) _node()         {}
func (*CallExpression) _node()        {}
func (*NewExpression) _node()         {}
func (*FunctionLiteral) _node()       {}
func (*UnaryExpression) _node()       {}
func (*UpdateExpression) _node()      {}
func (*BinaryExpression) _node()      {}
func (*ConditionalExpression) _node() {}
func (*AssignExpression) _node()      {}
func (*ParenExpression) _node()       {}

func (*BooleanLiteral) _expr()        {}
func (*NullLiteral) _expr()           {}
func (*IntLiteral) _expr()            {}
func (*DoubleLiteral) _expr()         {}
func (*DecimalLiteral) _expr()        {}
func (*StringLiteral) _expr()         {}
func (*RegExpLiteral) _expr()         {}
func (*Identifier) _expr()            {}
func (*ThisExpression) _expr()        {}
func (*MemberExpression) _expr()      {}
func (*IndexExpression) _expr()       {}
func (*RawExpression) _expr()         {}
func (*ArrayLiteral) _expr()          {}
func (*ObjectLiteral) _expr()         {}
func (*CallExpression) _expr()        {}
func (*NewExpression) _expr()         {}
func (*FunctionLiteral) _expr()       {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}
func (*BinaryExpression) _expr()      {}
func (*ConditionalExpression) _expr() {}
func (*AssignExpression) _expr()      {}
func (*ParenExpression) _expr()       {}

func (*Identifier) _target()       {}
func (*MemberExpression) _target() {}
func (*IndexExpression) _target()  {}

func (*Block) _node()               {}
func (*VariableDeclaration) _node() {}
func (*ExpressionStatement) _node() {}
func (*IfStatement) _node()         {}
func (*ForStatement) _node()        {}
func (*ForInStatement) _node()      {}
func (*WhileStatement) _node()      {}
func (*DoWhileStatement) _node()    {}
func (*TryStatement) _node()        {}
func (*SwitchStatement) _node()     {}
func (*ReturnStatement) _node()     {}
func (*BreakStatement) _node()      {}
func (*ContinueStatement) _node()   {}
func (*ThrowStatement) _node()      {}
func (*DeleteStatement) _node()     {}
func (*DebuggerStatement) _node()   {}
func (*Comment) _node()             {}
func (*Label) _node()               {}
func (*RawStatement) _node()        {}
func (*FunctionDeclaration) _node() {}
func (*ClassDeclaration) _node()    {}
func (*Package) _node()             {}

func (*Block) _stmt()               {}
func (*VariableDeclaration) _stmt() {}
func (*ExpressionStatement) _stmt() {}
func (*IfStatement) _stmt()         {}
func (*ForStatement) _stmt()        {}
func (*ForInStatement) _stmt()      {}
func (*WhileStatement) _stmt()      {}
func (*DoWhileStatement) _stmt()    {}
func (*TryStatement) _stmt()        {}
func (*SwitchStatement) _stmt()     {}
func (*ReturnStatement) _stmt()     {}
func (*BreakStatement) _stmt()      {}
func (*ContinueStatement) _stmt()   {}
func (*ThrowStatement) _stmt()      {}
func (*DeleteStatement) _stmt()     {}
func (*DebuggerStatement) _stmt()   {}
func (*Comment) _stmt()             {}
func (*Label) _stmt()               {}
func (*RawStatement) _stmt()        {}
func (*FunctionDeclaration) _stmt() {}
func (*ClassDeclaration) _stmt()    {}
