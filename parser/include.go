/*
 * Nexus
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"devt.de/krotik/common/fileutil"
	"github.com/sunshineinc/NexusLang/diag"
)

/*
IncludeResolver is the source-include resolver collaborator named in
spec.md §1/§6: given a path, it yields a token stream. Matches the
original contract shape (scanFile followed by getTokens) rather than
collapsing it into one call, since a resolver may want to scan once and
be queried for tokens more than once.
*/
type IncludeResolver interface {
	/*
		ScanFile resolves and scans path, making its tokens available via
		Tokens. Diagnostics encountered while scanning are reported to sink.
	*/
	ScanFile(path string, sink *diag.Sink) error

	/*
		Tokens returns the token stream produced by the most recent ScanFile
		call.
	*/
	Tokens() []Token
}

/*
FileIncludeResolver resolves include paths against files on disk, rooted
under Root so that 'incluir("../../etc/passwd")' cannot escape the source
tree — grounded on the teacher's util.FileImportLocator
(devt.de/krotik/common/fileutil sub-path check).
*/
type FileIncludeResolver struct {
	Root   string
	tokens []Token
}

/*
NewFileIncludeResolver creates a resolver rooted at root.
*/
func NewFileIncludeResolver(root string) *FileIncludeResolver {
	return &FileIncludeResolver{Root: root}
}

/*
ScanFile implements IncludeResolver.
*/
func (r *FileIncludeResolver) ScanFile(path string, sink *diag.Sink) error {
	importPath := filepath.Clean(filepath.Join(r.Root, path))

	ok, err := isSubpath(r.Root, importPath)
	if err == nil && !ok {
		return fmt.Errorf("include path is outside of source root: %v", path)
	}
	if err != nil {
		return err
	}

	if exists, _ := fileutil.PathExists(importPath); !exists {
		return fmt.Errorf("could not include path %v: file does not exist", path)
	}

	content, err := os.ReadFile(importPath)
	if err != nil {
		return fmt.Errorf("could not include path %v: %w", path, err)
	}

	r.tokens = Scan(string(content), sink)
	return nil
}

/*
Tokens implements IncludeResolver.
*/
func (r *FileIncludeResolver) Tokens() []Token {
	return r.tokens
}

func isSubpath(root, sub string) (bool, error) {
	rel, err := filepath.Rel(root, sub)
	return err == nil &&
		!strings.HasPrefix(rel, ".."+string(os.PathSeparator)) &&
		rel != "..", err
}

/*
MemoryIncludeResolver holds a fixed set of named sources in memory. Used by
tests and by embeddings that assemble Nexus source from non-file sources.
*/
type MemoryIncludeResolver struct {
	Files  map[string]string
	tokens []Token
}

/*
ScanFile implements IncludeResolver.
*/
func (r *MemoryIncludeResolver) ScanFile(path string, sink *diag.Sink) error {
	src, ok := r.Files[path]
	if !ok {
		return fmt.Errorf("could not find include path: %v", path)
	}
	r.tokens = Scan(src, sink)
	return nil
}

/*
Tokens implements IncludeResolver.
*/
func (r *MemoryIncludeResolver) Tokens() []Token {
	return r.tokens
}
