package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"

	"github.com/t14raptor/go-jscode/ast"
	"github.com/t14raptor/go-jscode/op"
)

var (
	compact = Settings{}
	minimum = Settings{MinimumCodeSize: true}
)

func requireValidJS(t *testing.T, src string) {
	t.Helper()
	_, err := js.Parse(parse.NewInputString(src), js.Options{})
	require.NoError(t, err, src)
}

func TestBlock(t *testing.T) {
	b := ast.NewBlock()
	check := func(want string) {
		t.Helper()
		assert.Equal(t, want, Generate(b, compact))
	}
	assert.Equal(t, 0, b.Pos())
	assert.True(t, b.IsEmpty())
	check("{}")

	a := b.Var("a", nil)
	assert.Equal(t, 1, b.Pos())
	check("{var a;}")

	x := b.Var("b", ast.Int(5))
	assert.Equal(t, 2, b.Pos())
	check("{var a;var b=5;}")

	b.Assign(a, x)
	b.Assign(x, ast.True())
	b.Assign(a, ast.Char('c'))
	b.Assign(x, ast.Double(3.1234))
	assert.Equal(t, 6, b.Pos())
	check("{var a;var b=5;a=b;b=true;a='c';b=3.1234;}")

	b.Assign(a, ast.Float(47.5))
	b.Assign(x, ast.Int(65599))
	b.Assign(a, ast.Int(int64(655996559965599)))
	pos := b.Pos()
	b.Assign(x, ast.String("Ha llo"))
	b.AssignPlus(x, ast.Char('!'))
	const head = "{var a;var b=5;a=b;b=true;a='c';b=3.1234;a=47.5;b=65599;a=655996559965599;"
	const tail = "b='Ha llo';b+='!';"
	check(head + tail + "}")

	b.SetPos(pos)
	b.AssignPlus(a, ast.Double(5))
	b.AssignPlus(a, ast.Double(-4))
	b.AssignPlus(a, ast.Double(0))
	b.AssignMinus(a, ast.Double(0))
	check(head + "a+=5.0;a-=4.0;" + tail + "}")

	b.AssignPlus(a, ast.Float(27))
	b.AssignPlus(a, ast.Float(-26))
	b.AssignPlus(a, ast.Float(0))
	b.AssignMinus(a, ast.Float(0))
	b.AssignPlus(a, ast.Int(32))
	b.AssignPlus(a, ast.Int(-33))
	b.AssignPlus(a, ast.Int(0))
	b.AssignMinus(a, ast.Int(0))
	b.AssignPlus(a, ast.Int(int64(1234567890111)))
	b.AssignPlus(a, ast.Int(int64(-9876543219888)))
	b.AssignPlus(a, ast.Int(int64(0)))
	b.AssignMinus(a, ast.Int(int64(0)))
	const middle = "a+=5.0;a-=4.0;a+=27.0;a-=26.0;a+=32;a-=33;a+=1234567890111;a-=9876543219888;"
	check(head + middle + tail + "}")

	b.PosEnd()
	b.AssignPlus(x, ast.String(" oder?"))
	check(head + middle + tail + "b+=' oder?';}")
	requireValidJS(t, "function f()"+Generate(b, compact))

	b.Clear()
	check("{}")
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Pos())

	a = b.Var("a", ast.Int(5))
	check("{var a=5;}")

	b.AssignMultiply(a, ast.Double(2.5))
	b.AssignMultiply(a, ast.Double(1))
	b.AssignMultiply(a, ast.Float(3.25))
	b.AssignMultiply(a, ast.Float(1))
	b.AssignMultiply(a, ast.Int(4))
	b.AssignMultiply(a, ast.Int(1))
	b.AssignMultiply(a, ast.Int(int64(56)))
	b.AssignMultiply(a, ast.Int(int64(1)))
	check("{var a=5;a*=2.5;a*=3.25;a*=4;a*=56;}")

	b.AssignDivide(a, ast.Double(4.5))
	b.AssignDivide(a, ast.Double(1))
	b.AssignDivide(a, ast.Float(22))
	b.AssignDivide(a, ast.Float(1))
	b.AssignDivide(a, ast.Int(3))
	b.AssignDivide(a, ast.Int(1))
	b.AssignDivide(a, ast.Int(int64(11)))
	b.AssignDivide(a, ast.Int(int64(1)))
	check("{var a=5;a*=2.5;a*=3.25;a*=4;a*=56;a/=4.5;a/=22.0;a/=3;a/=11;}")

	b.AssignModulo(a, ast.Int(101))
	b.AssignModulo(a, ast.Int(int64(56)))
	b.Assign(a, ast.String("Test"))
	b.InvokeMethod(a, "length")
	const rest = "{var a=5;a*=2.5;a*=3.25;a*=4;a*=56;a/=4.5;a/=22.0;a/=3;a/=11;a%=101;a%=56;a='Test';a.length();"
	check(rest + "}")

	b.If(op.Eeq(ast.Int(1), ast.Int(1))).Then().Return(ast.False())
	check(rest + "if(1===1){return false;}}")
	requireValidJS(t, "function f()"+Generate(b, compact))
}

func TestRawStatementInBlock(t *testing.T) {
	b := ast.NewBlock()
	b.Raw("a=b;")
	assert.Equal(t, "{a=b;}", Generate(b, compact))
}

func TestEmptyPackage(t *testing.T) {
	pkg := ast.NewPackage()
	assert.Equal(t, "", Generate(pkg, DefaultSettings()))
	assert.Equal(t, "", Generate(pkg, minimum))
}

func mockPackage() *ast.Package {
	pkg := ast.NewPackage()
	pkg.Var("g_aRoot", ast.Int(0))

	{
		main := pkg.Function("mainAdd")
		main.JSDoc().Add("This is a global function").Add("It does only crappy things")
		m1 := main.Param("m1")
		main.JSDoc().AddParam(m1, "Any kind of value")
		body := main.Body

		root := body.Var("root", ast.Int(5))

		add := body.Function("add")
		add.JSDoc().Add("This is a nested function")
		s1 := add.Param("s1")
		s2 := add.Param("s2")
		add.Body.Return(op.Plus(s1, s2))
		body.Invoke(add.Ref(), ast.Int(32), ast.Int(-4))

		add2 := body.Var("add2", ast.New(ast.Ref("Function"), ast.String("x"), ast.String("y"), ast.String("return x+y")))
		body.Invoke(add2, ast.Int(1), ast.Int(2))

		cond := body.If(op.IsTypeof(m1, "String"))
		cond.Then().Comment("Test try/catch/finally")
		try := cond.Then().Try()
		try.Body.Return(ast.Int(5))
		try.Catch("ex").Throw(ast.New(ast.Ref("Error"), ast.Ref("ex")))
		try.Finally().InvokeMethod(root, "substring", ast.Int(0), ast.Int(1))

		body.Comment("Test reg exps")
		body.InvokeMethod(ast.Regex("water(mark)?").Gim(true, true, true), "test", ast.String("waterMark"))
		body.InvokeMethod(ast.Regex("water(mark)?").Gim(false, true, false), "test", ast.String("Water"))
		body.InvokeMethod(ast.String("string"), "search", ast.Regex("expression"))
		body.InvokeMethod(ast.String("string"), "replace", ast.Regex("expression"), ast.String("replacement"))

		anon := ast.Function()
		av := anon.Param("a")
		anon.Body.Return(op.Plus(av, ast.Double(0.5)))
		body.Invoke(anon, ast.Double(7.5))

		array1 := body.Var("array1", ast.Array(ast.Int(5)))
		body.Assign(ast.Index(array1, ast.Int(0)), ast.Int(6))

		array1a := body.Var("array1a", ast.New(ast.Ref("Array"), ast.Int(5)))
		body.Assign(ast.Index(array1a, ast.Int(0)), ast.Int(7))
		body.InvokeMethod(array1a, "push", ast.String("pushed"))

		array2 := body.Var("array2", ast.Object().
			Add("num", ast.Int(1)).
			Add("array", array1).
			Add("assocarray", ast.Object().Add("key", ast.String("value")).Add("key2", ast.String("anything else"))))
		body.Assign(ast.Index(array2, ast.String("num")), ast.Int(6))

		var sum ast.Expr = op.Plus(m1, ast.Member(ast.String("abc"), "length"))
		sum = op.Plus(sum, root)
		sum = op.Plus(sum, add.Invoke(ast.Int(2), ast.Int(4)))
		sum = op.Plus(sum, ast.Int(7))
		body.Return(op.Div(op.Sub(op.Plus(op.Mul(sum, ast.Double(1.5)), ast.Int(5)), ast.Int(3)), ast.Int(2)))
	}

	{
		main := pkg.Function("sajax_extract_htmlcomments")
		html := main.Param("sHTML")
		comments := main.Body.Var("sComments", ast.String(""))
		main.Body.Comment(`Lazy quantifier "*?"`)
		anon := ast.Function("all")
		comment := anon.Param("sComment")
		anon.Body.AssignPlus(comments, op.Plus(comment, ast.Char('\n')))
		anon.Body.Return(ast.String(""))
		main.Body.Assign(html, ast.InvokeMethod(html, "replace", ast.Regex(`<!--([\s\S]*?)-->`).Gim(true, false, false), anon))
		main.Body.Comment("Remaining HTML + comments content")
		main.Body.Return(ast.Object().Add("html", html).Add("comments", comments))

		pkg.Invoke(main.Ref(), ast.String("<div>Test</div>"))
	}

	{
		i := ast.Ref("i")
		label := pkg.Label("loop")
		loop := pkg.ForIn("i", ast.Array(ast.Int(1), ast.Int(2), ast.Int(4)))
		cond := loop.Body.If(op.Eq(i, ast.Int(2)))
		cond.Then().Break()
		cond.Else().ContinueTo(label)
	}

	{
		loop := pkg.For()
		i := loop.InitVar("i", ast.Int(0))
		loop.SetTest(op.Lt(i, ast.Int(5))).SetUpdate(op.IncrPostfix(i))
		loop.Body.Continue()

		pkg.For().SimpleLoop("i", 5, 0)
		pkg.For().SimpleLoop("i", 0, 5)
	}

	{
		i := ast.Ref("i")
		pkg.Do(op.Lt(i, ast.Int(1000))).Body.IncrPostfix(i)
		pkg.While(op.Gt(i, ast.Int(0))).Body.DecrPostfix(i)
	}
	return pkg
}

func TestPackageMinimumCodeSize(t *testing.T) {
	pkg := mockPackage()
	code := Generate(pkg, DefaultSettings())
	compressed := Generate(pkg, minimum)
	assert.Equal(t, "var g_aRoot=0;"+
		"function mainAdd(m1){"+
		"var root=5;"+
		"function add(s1,s2){return (s1+s2);}"+
		"add(32,-4);"+
		"var add2=new Function('x','y','return x+y');"+
		"add2(1,2);"+
		"if(typeof m1==='String')"+
		"{try{return 5;}catch(ex){throw new Error(ex);}finally{root.substring(0,1);}}"+
		"/water(mark)?/gim.test('waterMark');"+
		"/water(mark)?/i.test('Water');"+
		"'string'.search(/expression/);"+
		"'string'.replace(/expression/,'replacement');"+
		"(function(a){return (a+0.5);})(7.5);"+
		"var array1=[5];"+
		"array1[0]=6;"+
		"var array1a=new Array(5);"+
		"array1a[0]=7;"+
		"array1a.push('pushed');"+
		"var array2={num:1,array:array1,assocarray:{key:'value',key2:'anything else'}};"+
		"array2['num']=6;"+
		"return (((((m1+'abc'.length+root+add(2,4)+7)*1.5)+5)-3)/2);}"+
		"function sajax_extract_htmlcomments(sHTML){"+
		"var sComments='';"+
		`sHTML=sHTML.replace(/<!--([\s\S]*?)-->/g,function(all,sComment){sComments+=(sComment+'\n');return '';});`+
		"return {html:sHTML,comments:sComments};}"+
		`sajax_extract_htmlcomments('<div>Test<\/div>');`+
		"loop:for(var i in [1,2,4]){"+
		"if(i==2){break;}"+
		"else{continue loop;}"+
		"}"+
		"for(var i=0;(i<5);i++){"+
		"continue;"+
		"}"+
		"for(var i=5;(i>0);i--);"+
		"for(var i=0;(i<5);i++);"+
		"do{"+
		"i++;"+
		"}while(i<1000);"+
		"while(i>0){"+
		"i--;"+
		"}",
		compressed)
	assert.Greater(t, len(code), len(compressed))

	requireValidJS(t, code)
	requireValidJS(t, compressed)
	requireValidJS(t, Generate(pkg, compact))
}

func TestJQueryExtension(t *testing.T) {
	pkg := ast.NewPackage()
	f := ast.Function()
	dollar := f.Param("$")
	f.Body.Comment("Mark elements as enabled or disabled")

	setDisabled := ast.Function()
	disabled := setDisabled.Param("bDisabled")
	each := ast.Function()
	each.Body.If(op.IsNotUndefined(ast.RefThis("disabled"))).Then().Assign(ast.RefThis("disabled"), disabled)
	setDisabled.Body.Return(ast.InvokeMethod(ast.This(), "each", each))
	f.Body.Assign(ast.Member(dollar, "fn", "setDisabled"), setDisabled)
	pkg.Invoke(f, ast.Direct("jQuery"))

	assert.Equal(t, "(function($){"+
		"$.fn.setDisabled=function(bDisabled){"+
		"return this.each(function(){"+
		"if(typeof this.disabled!=='undefined'){this.disabled=bDisabled;}"+
		"});};})(jQuery);", Generate(pkg, minimum))

	assert.Equal(t, `(function($){
  // Mark elements as enabled or disabled
  $.fn.setDisabled=function(bDisabled){
    return this.each(function(){
      if(typeof this.disabled!=='undefined'){
        this.disabled=bDisabled;
      }
    });
  };
})(jQuery);
`, Generate(pkg, DefaultSettings()))
	requireValidJS(t, Generate(pkg, compact))
}

func TestIndentAndAlign(t *testing.T) {
	pkg := ast.NewPackage()
	pkg.Var("x", ast.Int(1))
	f := pkg.Function("f")
	p := f.Param("p")
	f.JSDoc().Add("Doubles p").AddParam(p, "the value")
	f.Body.Comment("twice")
	f.Body.Return(op.Mul(p, ast.Int(2)))

	assert.Equal(t, "var x=1;\n"+
		"/**\n"+
		" * Doubles p\n"+
		" * @param p the value\n"+
		" */\n"+
		"function f(p){\n"+
		"  // twice\n"+
		"  return (p*2);\n"+
		"}\n", Generate(pkg, DefaultSettings()))

	assert.Equal(t, "var x=1;/** Doubles p @param p the value */function f(p){/* twice */return (p*2);}",
		Generate(pkg, compact))
	assert.Equal(t, "var x=1;function f(p){return (p*2);}", Generate(pkg, minimum))

	tabs := Settings{IndentAndAlign: true, Indent: "\t", NewLine: "\r\n"}
	assert.Equal(t, "{\r\n\tvar a;\r\n}", Generate(blockWith(func(b *ast.Block) { b.Var("a", nil) }), tabs))
}

func blockWith(fill func(b *ast.Block)) *ast.Block {
	b := ast.NewBlock()
	fill(b)
	return b
}

func TestComments(t *testing.T) {
	b := blockWith(func(b *ast.Block) {
		b.Comment("first\nsecond")
		b.Comment("a */ b")
	})
	assert.Equal(t, "{\n  // first\n  // second\n  // a */ b\n}", Generate(b, DefaultSettings()))
	assert.Equal(t, "{/* first\nsecond */ /* a * / b */}", Generate(b, compact))
	assert.Equal(t, "{}", Generate(b, minimum))
}

func TestStatements(t *testing.T) {
	x := ast.Ref("x")
	tests := []struct {
		name string
		fill func(b *ast.Block)
		want string
	}{
		{
			name: "switch",
			fill: func(b *ast.Block) {
				sw := b.Switch(x)
				sw.Case(ast.Int(1)).Break()
				sw.Default().Throw(x)
			},
			want: "{switch(x){case 1:break;default:throw x;}}",
		},
		{
			name: "else if",
			fill: func(b *ast.Block) {
				c := b.If(op.Not(x))
				c.Then().Assign(x, ast.Int(1))
				next := c.ElseIf(op.Gt(x, ast.Int(2)))
				next.Then().Assign(x, ast.Int(2))
				next.Else().Assign(x, ast.Int(3))
			},
			want: "{if(!x){x=1;}else if(x>2){x=2;}else{x=3;}}",
		},
		{
			name: "empty bodies",
			fill: func(b *ast.Block) {
				b.While(x)
				b.Do(x)
				b.If(x).Else()
				b.Try().Catch("e")
			},
			want: "{while(x);do;while(x);if(x);else;try{}catch(e){}}",
		},
		{
			name: "misc",
			fill: func(b *ast.Block) {
				b.Delete(ast.Member(x, "y"))
				b.Debugger()
				b.Throw(ast.String("boom"))
				b.IncrPrefix(x)
				b.DecrPrefix(x)
				b.NestedBlock().Var("y", ast.Null())
				b.Try().Finally().Debugger()
				b.Expr(ast.Member(ast.Object().Add("a", ast.Int(1)), "a"))
			},
			want: "{delete x.y;debugger;throw 'boom';++x;--x;{var y=null;}try{}finally{debugger;}({a:1}.a);}",
		},
		{
			name: "trailing label",
			fill: func(b *ast.Block) {
				b.Var("y", nil)
				b.Label("outer")
			},
			want: "{var y;outer:;}",
		},
		{
			name: "label before comment",
			fill: func(b *ast.Block) {
				b.Label("outer")
				b.Comment("nothing left")
			},
			want: "{outer:;}",
		},
		{
			name: "label ending a case",
			fill: func(b *ast.Block) {
				sw := b.Switch(x)
				sw.Case(ast.Int(1)).Label("done")
				d := sw.Default()
				d.Label("other")
				d.While(x)
			},
			want: "{switch(x){case 1:done:;default:other:while(x);}}",
		},
		{
			name: "regex slashes and line breaks",
			fill: func(b *ast.Block) {
				b.Assign(x, ast.Regex("a/b"))
				b.Assign(x, ast.Regex("[/]\\/x\n"))
				b.Assign(x, ast.Regex("\\\n"))
			},
			want: `{x=/a\/b/;x=/[/]\/x\n/;x=/\n/;}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(blockWith(tt.fill), minimum)
			assert.Equal(t, tt.want, got)
			requireValidJS(t, got)
		})
	}
}

func TestSwitchIndentAndAlign(t *testing.T) {
	b := blockWith(func(b *ast.Block) {
		sw := b.Switch(ast.Ref("x"))
		sw.Case(ast.Int(1)).Break()
		sw.Default().Return(nil)
	})
	assert.Equal(t, "{\n  switch(x){\n    case 1:\n      break;\n    default:\n      return;\n  }\n}", Generate(b, DefaultSettings()))
}

func TestClass(t *testing.T) {
	pkg := ast.NewPackage()
	c := pkg.Class("Point")
	x := c.Constructor().Param("x")
	c.Constructor().Body.Assign(ast.RefThis("x"), x)
	c.Field("y", ast.Int(0))
	c.Method("norm").Body.Return(ast.RefThis("x"))

	sub := pkg.Class("Point3").Extends(ast.Ref("Point"))
	sub.Field("z", nil)

	got := Generate(pkg, minimum)
	assert.Equal(t, "function Point(x){this.x=x;}"+
		"Point.prototype={y:0,norm:function(){return this.x;}};"+
		"function Point3(){}"+
		"Point3.prototype=Object.assign(Object.create(Point.prototype),{z:null});", got)
	requireValidJS(t, got)
}

func TestTokenSeparation(t *testing.T) {
	a, b := ast.Ref("a"), ast.Ref("b")
	tests := []struct {
		in   ast.Expr
		want string
	}{
		{op.Sub(a, ast.Int(-5)), "(a- -5)"},
		{op.Sub(a, op.Minus(b)), "(a- -b)"},
		{op.Plus(a, op.IncrPrefix(b)), "(a+ ++b)"},
		{op.Div(a, ast.Regex("x")), "(a/ /x/)"},
		{op.Minus(op.DecrPrefix(b)), "- --b"},
		{op.In(ast.String("x"), a), "('x' in a)"},
		{op.InstanceOf(a, ast.Ref("Array")), "(a instanceof Array)"},
		{ast.Regex(""), "/(?:)/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Generate(tt.in, minimum))
	}
}

func TestMemberObjectParens(t *testing.T) {
	x := ast.Ref("x")
	tests := []struct {
		in   ast.Expr
		want string
	}{
		{ast.InvokeMethod(ast.Int(5), "toString"), "(5).toString()"},
		{ast.InvokeMethod(ast.Double(1.5), "toFixed"), "1.5.toFixed()"},
		{ast.Member(op.Minus(x), "y"), "(-x).y"},
		{ast.Member(op.Plus(x, ast.Int(1)), "y"), "(x+1).y"},
		{ast.Member(op.Typeof(x), "length"), "(typeof x).length"},
		{ast.Member(op.Not(x), "y"), "(!x).y"},
		{ast.Index(x, ast.String("a b")), "x['a b']"},
		{ast.New(ast.Invoke(x)), "new (x())()"},
		{ast.Member(ast.Assign(x, ast.Int(1)), "y"), "(x=1).y"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Generate(tt.in, minimum))
	}
}

func TestObjectKeys(t *testing.T) {
	o := ast.Object().Add("a", ast.Int(1)).Add("1", ast.Int(2)).Add("a-b", ast.Int(3)).Add("if", ast.Int(4))
	assert.Equal(t, "{a:1,1:2,'a-b':3,'if':4}", Generate(o, minimum))
	o.SetForceQuoting(true)
	assert.Equal(t, "{'a':1,'1':2,'a-b':3,'if':4}", Generate(o, minimum))
}
