// asyncdoc generates AsyncAPI 3.0 documents from declared message types.
package main

func main() {
	Execute()
}
