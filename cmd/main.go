package main

import (
	novels "github.com/kerbaras/novels/cmd/novels"
)

func main() {
	novels.Execute()
}
