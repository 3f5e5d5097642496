package compiler

import (
	"time"

	"github.com/golang/glog"

	"github.com/celexpr/celc/common"
	"github.com/celexpr/celc/common/containers"
	"github.com/celexpr/celc/emit"
	"github.com/celexpr/celc/ext"
	"github.com/celexpr/celc/interpreter"
	"github.com/celexpr/celc/ir"
	"github.com/celexpr/celc/parser"
)

// Compile parses, transforms, and plans source into a reusable
// CompileResult. metrics may be nil.
func Compile(source string, opts Options, metrics *Metrics) (result *CompileResult, err error) {
	start := time.Now()
	defer func() { metrics.observeCompile(start, err) }()

	if verr := opts.Validate(); verr != nil {
		return nil, &ParseError{Errors: invalidOptionsErrors(verr)}
	}

	glog.V(1).Infof("compiling expression (container=%q, len=%d)", opts.Container, len(source))

	src := common.NewTextSource("<input>", source)
	parsed := parser.Parse(src, parser.Options{DisableMacros: opts.DisableMacros})
	if !parsed.Errors.Empty() {
		glog.V(1).Infof("compile failed: %d parse error(s)", len(parsed.Errors.GetErrors()))
		return nil, &ParseError{Errors: parsed.Errors}
	}

	cont := containers.New(opts.Container)
	root, terr := ir.Transform(parsed.Expr, cont)
	if terr != nil {
		glog.V(1).Infof("compile failed during transform: %v", terr)
		return nil, &ParseError{Errors: transformErrors(src, terr)}
	}

	result, err = plan(root, opts)
	if err != nil {
		return nil, err
	}
	result.metrics = metrics
	glog.V(1).Info("compile succeeded")
	return result, nil
}

// plan builds the dispatcher, interpretable, and diagnostic rendering for a
// transformed expression. It runs under a recover guard: a malformed IR node
// reaching the emitter or planner is a bug in the transform stage, not a
// property of the input source, so it is reported as an InternalError
// instead of crashing the embedding process.
func plan(root ir.Node, opts Options) (res *CompileResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newInternalError("panic while planning compiled expression: %v", r)
		}
	}()

	disp := interpreter.NewDefaultDispatcher()
	ext.Register(disp, opts.extensions())

	planner := interpreter.NewPlanner(disp)
	return &CompileResult{
		Source: emit.Render(root),
		plan:   planner.Plan(root),
		cache:  newBindingCache(),
	}, nil
}

// invalidOptionsErrors adapts a validator error into the common.Errors
// shape every other compile failure reports through.
func invalidOptionsErrors(verr error) *common.Errors {
	errs := common.NewErrors(nil)
	errs.ReportError(common.NoLocation, "invalid options: %v", verr)
	return errs
}

// transformErrors adapts a single transform-time error (there is no
// recovery inside ir.Transform, so it always carries exactly one) into the
// same common.Errors shape a parse failure uses.
func transformErrors(src common.Source, terr error) *common.Errors {
	errs := common.NewErrors(src)
	errs.ReportError(common.NoLocation, "%v", terr)
	return errs
}
