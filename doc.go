/*
Package msgpattern parses and validates ICU MessageFormat patterns: the
{argument, type, style} syntax used to localize strings with plural
forms, gendered selection, and nested sub-messages.

A pattern is parsed once into a flat stream of Parts (see package part)
rather than a tree, the same linearisation java.text.MessagePattern uses,
traversed here through a PartAccessor (package parse). Package plural
supplies the closed CLDR cardinal/ordinal rule tables a pattern's plural
arguments are checked against; package validate builds on both to check
a single pattern's category compliance (PatternValidator) and to compare
a source/target pattern pair for structural compatibility
(PatternComparator).

This package is the library's façade: MessagePattern wraps a
parse.ParseContext behind a small parse/clear/query/iterate surface.
*/
package msgpattern
