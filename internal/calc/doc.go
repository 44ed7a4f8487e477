/*
Package calc implements an arithmetic calculator that works one statement at a
time. A statement is a single expression ended by a newline.

	statement  --> expression EOL ;
	expression --> term ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" | "%" ) unary )* ;
	unary      --> "-" unary | power ;
	power      --> primary ( "^" unary )? ;
	primary    --> NUMBER | "(" expression ")" ;

Numbers are float64. Binary operators are left-associative except '^'.
Negation binds looser than '^', "-2^2" is -4 while "(-2)^2" is 4. '%' is the
floating-point remainder and takes the sign of its left operand. A zero divisor
for '/' or '%' is an error, it never produces an infinity.

Statements come from a Source: the text given on the command line, a line
editor, or a raw stream. The Controller owns the active source, the Engine
evaluates what the controller hands out and the Driver ties them together.
*/
package calc
