package common

import "fmt"

// Tool is the generator name written into file headers.
const Tool = "opmeta"

// FileHeader returns the generated-code banner using the target language's
// line comment prefix. The first line matches the form recognised by Go tooling.
func FileHeader(comment, version string) string {
	return fmt.Sprintf("%s Code generated by %s v%s. DO NOT EDIT.\n%s Operation metadata for GraphQL documents.\n",
		comment, Tool, version, comment)
}
