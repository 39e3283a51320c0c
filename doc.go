/*
Package cfgrec is a recognizer toolbox for context-free grammars.

It decides whether a word is derivable from the start symbol of a context-free
grammar, using Earley's chart parsing algorithm. Grammars may be ambiguous,
left-recursive and may contain epsilon-productions. Package structure is
as follows:

■ grammar: Package grammar implements symbols, rules and grammars, together with
a grammar builder and the augmentation step the recognizer works on.

■ earley: Package earley implements the Earley recognizer.

■ scanner: Package scanner defines tokenizers for the input layer; sub-package
lexmach adapts lexmachine.

■ textfmt: Package textfmt reads grammars and query words from a simple text format.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package cfgrec
