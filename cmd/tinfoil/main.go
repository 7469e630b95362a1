// Command tinfoil is the interactive front end for the encrypted key-value
// store in internal/store. It is a collaborator outside the core per
// spec.md §1, supplemented from the original implementation's
// tinfoilcli.py.
package main

func main() {
	Execute()
}
