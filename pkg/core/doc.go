// Package core defines the shared language of the umlit system.
//
// This package contains:
//   - The AST produced by the parser (Node, Port, Connector, DiagramAST)
//   - The flat diagram model consumed by layout and renderers (Diagram, FlatNode)
//   - Diagnostics for non-fatal structural warnings
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
