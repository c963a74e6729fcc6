package aliyun

import (
	"context"
	"errors"
	"fmt"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/labelhub/labelhub/internal/email"
)

// DirectMailClient 阿里云邮件推送渠道
type DirectMailClient struct {
	client      *dm20151123.Client
	accountName string
}

// NewDirectMailClient accountName 是平台在阿里云配置的发信地址
func NewDirectMailClient(accessKeyID, accessKeySecret, accountName string) (*DirectMailClient, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建凭据失败: %w", err)
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建 DirectMail 客户端失败: %w", err)
	}
	return &DirectMailClient{
		client:      client,
		accountName: accountName,
	}, nil
}

func (c *DirectMailClient) SendMail(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailRequest{
		AccountName:    tea.String(c.accountName),
		FromAlias:      tea.String(mail.From),
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	_, err := c.client.SingleSendMailWithOptions(request, &util.RuntimeOptions{})
	if err != nil {
		return c.wrapError(err)
	}
	return nil
}

func (c *DirectMailClient) wrapError(err error) error {
	var sdkErr *tea.SDKError
	if errors.As(err, &sdkErr) {
		return fmt.Errorf("阿里云邮件推送失败: %s", tea.StringValue(sdkErr.Message))
	}
	return fmt.Errorf("邮件发送失败: %w", err)
}
