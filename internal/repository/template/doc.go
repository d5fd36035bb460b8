// Package template persists rendered alarm fragments.
//
// FileRepository writes a fragment to a file on an afero filesystem and
// StreamRepository writes it to any io.Writer, both as indented JSON or YAML.
// The render service depends on the Repository interface only.
package template
