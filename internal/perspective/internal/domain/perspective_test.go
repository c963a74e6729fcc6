package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttribute_ValidateValue(t *testing.T) {
	testCases := []struct {
		name    string
		attr    Attribute
		value   string
		wantErr error
	}{
		{
			name:  "text类型不做校验",
			attr:  Attribute{Name: "city", Type: AttributeTypeText},
			value: "Lisboa",
		},
		{
			name:  "number类型合法取值",
			attr:  Attribute{Name: "age", Type: AttributeTypeNumber},
			value: "27",
		},
		{
			name:    "number类型非法取值",
			attr:    Attribute{Name: "age", Type: AttributeTypeNumber},
			value:   "twenty",
			wantErr: ErrInvalidAttributeValue,
		},
		{
			name:  "boolean类型大小写不敏感",
			attr:  Attribute{Name: "native", Type: AttributeTypeBoolean},
			value: "True",
		},
		{
			name:    "boolean类型非法取值",
			attr:    Attribute{Name: "native", Type: AttributeTypeBoolean},
			value:   "yes",
			wantErr: ErrInvalidAttributeValue,
		},
		{
			name: "list类型取值在候选项里",
			attr: Attribute{
				Name:    "gender",
				Type:    AttributeTypeList,
				Options: []string{"male", "female", "other"},
			},
			value: "female",
		},
		{
			name: "list类型取值不在候选项里",
			attr: Attribute{
				Name:    "gender",
				Type:    AttributeTypeList,
				Options: []string{"male", "female", "other"},
			},
			value:   "unknown",
			wantErr: ErrInvalidAttributeValue,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.attr.ValidateValue(tc.value)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
