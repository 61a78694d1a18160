// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/supertype/internal/astutil"
	"fillmore-labs.com/supertype/internal/config"
)

// Usage is the analysis result for a single usage of a type.
type Usage struct {
	// Expr is the type expression.
	Expr ast.Expr

	// Interface is the interface Expr could reference instead.
	Interface *types.TypeName

	// Safe reports whether Expr can be replaced.
	Safe bool

	// Reason is the short code of the mark keeping an unsafe usage, Cause its position.
	Reason string
	Cause  token.Pos
}

// Diagnostics emits diagnostics for the usages of a target.
//
// Safe usages are reported with a suggested fix replacing the type by the interface,
// unsafe usages only when explain is set.
func Diagnostics(ctx context.Context, p *analysis.Pass, usages []Usage, behavior config.Behavior) {
	defer trace.StartRegion(ctx, "Report").End()

	files := astutil.NewFiles(p.Fset, p.Files)
	explain := behavior.Enabled(config.ExplainUnsafe)

	for _, u := range usages {
		if !u.Safe && !explain {
			continue
		}

		file, ok := files.At(u.Expr.Pos())
		if !ok {
			astutil.InternalError(p, u.Expr, "Usage outside of package files")
			continue
		}

		if file.Skip(behavior.Enabled(config.IncludeGenerated)) || file.NoLint(u.Expr.Pos()) {
			continue
		}

		if u.Safe {
			reportSafe(p, file.Syntax(), u)
		} else {
			reportUnsafe(p, u)
		}
	}
}

func reportSafe(p *analysis.Pass, file *ast.File, u Usage) {
	diagnostic := analysis.Diagnostic{
		Pos:     u.Expr.Pos(),
		End:     u.Expr.End(),
		Message: fmt.Sprintf("Usage of '%s' can be replaced by '%s'", types.ExprString(u.Expr), u.Interface.Name()),
	}

	if name, ok := QualifiedName(p.Pkg, file, u.Interface, u.Expr.Pos()); ok {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
			Message:   fmt.Sprintf("Replace with '%s'", name),
			TextEdits: []analysis.TextEdit{{Pos: u.Expr.Pos(), End: u.Expr.End(), NewText: []byte(name)}},
		}}
	}

	p.Report(diagnostic)
}

func reportUnsafe(p *analysis.Pass, u Usage) {
	diagnostic := analysis.Diagnostic{
		Pos:     u.Expr.Pos(),
		End:     u.Expr.End(),
		Message: fmt.Sprintf("Usage of '%s' must keep its type (st:%s)", types.ExprString(u.Expr), u.Reason),
	}

	if u.Cause.IsValid() && u.Cause != u.Expr.Pos() {
		diagnostic.Related = []analysis.RelatedInformation{{Pos: u.Cause, Message: "Because of this use"}}
	}

	p.Report(diagnostic)
}
