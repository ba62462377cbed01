// pawsinspect - dumps the reflection registry and evaluator coverage.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/TML233/PawsEngine/engine"
	"github.com/TML233/PawsEngine/manifest"
)

func main() {
	manifestPath := flag.String("manifest", "", "Load class declarations from an engine.toml manifest")
	showOps := flag.Bool("ops", false, "Dump the operator evaluation coverage matrix")
	verbose := flag.Int("v", 0, "Log verbosity (0-2)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pawsinspect [options]\n\n")
		fmt.Fprintf(os.Stderr, "Registers the built-in engine classes (plus an optional manifest)\n")
		fmt.Fprintf(os.Stderr, "and prints the class hierarchy, methods, and properties.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pawsinspect                       # Dump built-in classes\n")
		fmt.Fprintf(os.Stderr, "  pawsinspect -manifest engine.toml # Include manifest classes\n")
		fmt.Fprintf(os.Stderr, "  pawsinspect -ops                  # Dump evaluator coverage\n")
	}
	flag.Parse()

	commonlog.Configure(*verbose, nil)

	reflection := engine.NewReflection()
	engine.DeclareBuiltinClasses(reflection)

	if *manifestPath != "" {
		m, err := manifest.Load(*manifestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, decl := range m.Declarations() {
			reflection.Declare(decl)
		}
	}

	if err := reflection.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing registry: %v\n", err)
		os.Exit(1)
	}

	dumpClasses(reflection)

	if *showOps {
		fmt.Println()
		dumpEvaluators()
	}
}

func dumpClasses(r *engine.Reflection) {
	fmt.Printf("Classes (%d):\n", r.Len())

	// Children under their parent, alphabetical among siblings, so the
	// indentation reads as the actual tree.
	children := make(map[*engine.ReflectionClass][]*engine.ReflectionClass)
	var roots []*engine.ReflectionClass
	for _, name := range r.GetClassNames() {
		class := r.GetClass(name)
		if parent := class.GetParent(); parent != nil {
			children[parent] = append(children[parent], class)
		} else {
			roots = append(roots, class)
		}
	}

	var dump func(class *engine.ReflectionClass)
	dump = func(class *engine.ReflectionClass) {
		indent := strings.Repeat("  ", class.Depth())
		flags := ""
		if class.IsInstantiatable() {
			flags = " [instantiable]"
		}
		fmt.Printf("  %s%s%s\n", indent, class.GetName(), flags)

		for _, mn := range class.GetMethodNames() {
			m := class.GetOwnMethod(mn)
			fmt.Printf("  %s  %s\n", indent, methodSignature(m))
		}
		for _, pn := range class.GetPropertyNames() {
			p := class.GetOwnProperty(pn)
			fmt.Printf("  %s  %s %s { get %s; set %s }\n", indent,
				p.GetType(), pn, p.GetGetter().GetName(), p.GetSetter().GetName())
		}
		for _, child := range children[class] {
			dump(child)
		}
	}
	for _, root := range roots {
		dump(root)
	}
}

func methodSignature(m *engine.ReflectionMethod) string {
	var b strings.Builder
	if m.IsStatic() {
		b.WriteString("static ")
	}
	b.WriteString(m.GetReturnType().String())
	b.WriteString(" ")
	b.WriteString(m.GetName())
	b.WriteString("(")
	names := m.GetArgumentNames()
	firstDefault := len(names) - m.GetDefaultArgumentCount()
	for i, arg := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg)
		if i >= firstDefault {
			b.WriteString("?")
		}
	}
	b.WriteString(")")
	if m.IsConst() {
		b.WriteString(" const")
	}
	return b.String()
}

var allTypes = []engine.VariantType{
	engine.TypeNull, engine.TypeBool, engine.TypeInt64,
	engine.TypeDouble, engine.TypeString, engine.TypeObject,
}

var allOperators = []engine.Operator{
	engine.OpEqual, engine.OpNotEqual, engine.OpLess, engine.OpLessEqual,
	engine.OpGreater, engine.OpGreaterEqual,
	engine.OpAdd, engine.OpSubtract, engine.OpMultiply, engine.OpDivide,
	engine.OpMod, engine.OpNegative, engine.OpPositive,
	engine.OpAnd, engine.OpOr, engine.OpXOr, engine.OpNot,
	engine.OpBitAnd, engine.OpBitOr, engine.OpBitXOr, engine.OpBitFlip,
	engine.OpBitShiftLeft, engine.OpBitShiftRight,
}

func dumpEvaluators() {
	fmt.Println("Evaluator coverage:")
	for _, op := range allOperators {
		var pairs []string
		for _, a := range allTypes {
			for _, b := range allTypes {
				if engine.CanEvaluate(op, a, b) {
					pairs = append(pairs, fmt.Sprintf("%v×%v", a, b))
				}
			}
		}
		if len(pairs) == 0 {
			continue
		}
		fmt.Printf("  %-14s %s\n", op, strings.Join(pairs, " "))
	}
}
