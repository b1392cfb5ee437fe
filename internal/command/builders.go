package command

// StyleCheck builds the style checker invocation for the given paths.
// The checker reports violations on stdout and signals them through its
// exit status; it never rewrites files.
func StyleCheck(tool string, paths ...string) Command {
	return Command{
		Name: tool,
		Args: paths,
	}
}

// InstallPackages builds the installer invocation that installs or
// upgrades the given packages
func InstallPackages(tool string, packages ...string) Command {
	args := []string{"install", "--upgrade"}
	args = append(args, packages...)

	return Command{
		Name: tool,
		Args: args,
	}
}

// SortImports builds the import sorter invocation for the given paths,
// recursing into directories. Files are rewritten in place.
func SortImports(tool string, paths ...string) Command {
	args := []string{"-rc"}
	args = append(args, paths...)

	return Command{
		Name: tool,
		Args: args,
	}
}

// FormatCode builds the code formatter invocation for the given paths.
// Files are rewritten in place.
func FormatCode(tool string, paths ...string) Command {
	return Command{
		Name: tool,
		Args: paths,
	}
}
