package translator

import "strings"

// Header is the fixed preamble of every generated program.
const Header = "#include <iostream>\nusing namespace std;\n"

// Emit wraps the body fragments in the C++ program boilerplate. Each
// fragment starts on its own line inside main, indented one level, in
// program order.
func Emit(body []string) string {
	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteString("\nint main() {\n")
	for _, frag := range body {
		for _, line := range strings.Split(frag, "\n") {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(indent + "return 0;\n")
	sb.WriteString("}\n")
	return sb.String()
}
