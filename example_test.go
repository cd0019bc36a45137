package tinyargs

import "fmt"

func ExampleParser() {
	// Declare every option up front, then parse the process arguments once.
	args := New()
	args.Add("-n", "--name", Value, true, "Name to greet")
	args.Add("-v", "--verbose", Flag, false, "Enable verbose output")

	// A real host passes os.Args[1:] here.
	if err := args.Parse([]string{"--name", "Alice", "-v"}); err != nil {
		// On failure a diagnostic line has already been printed; hosts
		// typically print help and exit non-zero.
		args.PrintHelp()
		return
	}

	// Either name resolves to the same option.
	name, _ := args.GetValue("-n")
	fmt.Println("name:", name)
	fmt.Println("verbose:", args.IsFlagSet("--verbose"))
	// Output:
	// name: Alice
	// verbose: true
}

func ExampleParser_PrintHelp() {
	args := New()
	args.Add("-n", "--name", Value, true, "Name to greet")
	args.Add("-h", "", Flag, false, "Show this help")
	args.PrintHelp()
	// Output:
	// Usage:
	//   -n, --name: Name to greet (Type: Key=Value)
	//   -h:     Show this help (Type: Flag)
}

func ExampleParser_Parse_failure() {
	args := New()
	args.Add("-n", "--name", Value, true, "Name to greet")
	err := args.Parse([]string{"--nope"})
	fmt.Println("failed:", err != nil)
	// Output:
	// Error: Unrecognized argument --nope
	// failed: true
}
