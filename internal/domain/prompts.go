package domain

import "strings"

const distortionTaxonomy = `I1: Non-inertial dereferencing: Involves using pointers or arrays to access structure or array members. I check if decompiled code uses pointers or arrays for structure members (with forced type casts like _DWORD, _BYTE) or pointer access for array members.
I2: Character and string literal issues: Decompilers may replace characters, strings, addresses, or macros with integers. I verify if integers in decompiled code represent these elements.
I3: Obfuscated control flow reconstruction: Involves altered control flow, such as swapped while/for loops, inlined functions, or deconstructed ternary operators. I check for abnormal control flow in decompiled code.
I4: Redundant code: Involves unnecessary variable declarations, meaningless parameter assignments, assigning non-returning function calls to variables, redundant variables from non-inertial dereferencing, or variable assignments from compiler/user macros. This often leads to false negatives and requires careful inspection.
I5: Return exceptions: Function structure or return values deviate from expectations, such as adding meaningless returns.
I6: Use of non-typed symbols: Occurs when decompiled code uses non-typed symbols, user macros, abnormal function calls, or compiler-specific functions.`

const expertPreamble = `As an experienced reverse engineering expert, I possess advanced skills in analyzing program code using reverse engineering tools such as IDA Pro and Ghidra. I have extensive expertise in analyzing decompiled code and can accurately identify both false positives and false negatives. It is important to note that these reverse engineering tools often produce significant code semantic distortions during the decompilation process due to factors like the compiler, architecture, and optimization levels. Therefore, I must carefully review and verify every line of decompiled code. I have pre-defined the following types of distortions (i.e., semantic discrepancies between the source code and decompiled code):
`

const labelingRequirements = `Below is the question input:
Question: {question}
**Requirements**: Only label, do not fix.
**Output format**: Output all decompiled code in the question, and for each identified distorted code line, append the distortion type number with "//Distortion type number" without explanation.
Helpful Answer:
`

const ragTemplate = expertPreamble + distortionTaxonomy + `
{context}
Consider the retrieval results from the distorted code database. These retrieval results indicate code lines with high similarity to distortion issues. My responsibility is to analyze the following decompiled code line by line, considering the potential distortion issues in the code. The retrieval results are only for contextual reference and are not to be outputted.
` + labelingRequirements

const ragWithVariablesTemplate = expertPreamble + distortionTaxonomy + `
{variables}
First, the function below may be split into blocks. Consider the potential redundant variables above and analyze the decompiled function block.
{context}
Next, consider the retrieval results from the distorted code database. These retrieval results indicate code lines with high similarity to distortion issues. My responsibility is to analyze the following decompiled code line by line, considering the potential distortion issues in the code. The retrieval results are only for contextual reference and are not to be outputted.
` + labelingRequirements

const variableTemplate = `As a program analysis expert, you possess excellent program analysis skills. Below are the variable dependencies extracted from decompiled code. During the decompilation process, new variables are defined due to register usage, which leads to a large number of redundant variables compared to the source code. Redundant variables refer to those that are temporary, intermediate, or represent the same data. These variables are often generated during the decompilation process due to register operations or temporary storage needs. Considering temporary or intermediate calculation results, these variables are only used for intermediate steps in computations or operations and are not utilized multiple times or have no significant independent meaning. Repetitively, these variables store the same or similar information and can logically be merged with other statements. The task is to directly output potentially redundant variables without any explanation. The output format is as follows: **Potential redundant variable: {all variable names}.
Question: {question}
Helpful Answer:
`

// RAGPrompt builds the labelling prompt for a whole query.
func RAGPrompt(context, question string) string {
	return strings.NewReplacer(
		"{context}", context,
		"{question}", question,
	).Replace(ragTemplate)
}

// RAGPromptWithVariables builds the labelling prompt for one block of a
// split query, carrying the redundant variables found in the whole function.
func RAGPromptWithVariables(variables, context, question string) string {
	return strings.NewReplacer(
		"{variables}", variables,
		"{context}", context,
		"{question}", question,
	).Replace(ragWithVariablesTemplate)
}

// VariablePrompt builds the prompt asking for redundant variables of a function.
func VariablePrompt(question string) string {
	return strings.NewReplacer("{question}", question).Replace(variableTemplate)
}
