// Package doctag splits a docstring into its free-text description and
// its @tags.
//
// Supported forms:
//
//	@param name [Type1, Type2] text
//	@param [Type1, Type2] name text
//	@param name text
//	@return [Type] text
//	@since 1.2.0
//
// Lines indented below a tag continue that tag's text. A blank line ends it.
package doctag
