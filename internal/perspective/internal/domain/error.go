package domain

import "errors"

var ErrInvalidAttributeValue = errors.New("属性取值不符合声明的类型")
