// roledep generates idle-role resource-policy dependency reports from
// Connect Secure XML configuration exports.
package main

func main() {
	Execute()
}
