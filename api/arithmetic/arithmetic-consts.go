// Autogenerated by Thrift Compiler (0.12.0)
// DO NOT EDIT UNLESS YOU ARE SURE THAT YOU KNOW WHAT YOU ARE DOING

package arithmetic

import (
	"bytes"
	"context"
	"fmt"
	"reflect"

	"github.com/XuKyle/thrift-calc/api/floatops"
	"github.com/apache/thrift/lib/go/thrift"
)

// (needed to ensure safety because of naive import list construction.)
var _ = thrift.ZERO
var _ = fmt.Printf
var _ = context.Background
var _ = reflect.DeepEqual
var _ = bytes.Equal

var _ = floatops.GoUnusedProtection__

var OPS []string

func init() {
	OPS = []string{
		"+",
		"-",
		"*",
		"^",
	}

}
