package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/viant/taskmgr/schema"
	"golang.org/x/oauth2"
)

// SSMAPI is the subset of the SSM client used by SSMStore.
type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
	PutParameter(ctx context.Context, params *ssm.PutParameterInput, optFns ...func(*ssm.Options)) (*ssm.PutParameterOutput, error)
	DeleteParameter(ctx context.Context, params *ssm.DeleteParameterInput, optFns ...func(*ssm.Options)) (*ssm.DeleteParameterOutput, error)
}

// SSMStore keeps the pair as one SecureString parameter in AWS Systems Manager.
type SSMStore struct {
	api    SSMAPI
	name   string
	memory *memoryStore
}

// NewSSMStore creates a parameter store backed Store
func NewSSMStore(api SSMAPI, name string) *SSMStore {
	return &SSMStore{api: api, name: name, memory: newMemoryStore()}
}

func (s *SSMStore) Init(ctx context.Context) error {
	out, err := s.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(s.name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		var notFound *types.ParameterNotFound
		if errors.As(err, &notFound) {
			s.memory.set(nil)
			return nil
		}
		return fmt.Errorf("failed to get parameter %v: %w", s.name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		s.memory.set(nil)
		return nil
	}
	pair := &schema.TokenPair{}
	if err = json.Unmarshal([]byte(*out.Parameter.Value), pair); err != nil {
		return fmt.Errorf("invalid parameter %v: %w", s.name, err)
	}
	if pair.AccessToken == "" && pair.RefreshToken == "" {
		s.memory.set(nil)
		return nil
	}
	s.memory.set(NewToken(pair.AccessToken, pair.RefreshToken))
	return nil
}

func (s *SSMStore) LookupToken(ctx context.Context) (*oauth2.Token, error) {
	return s.memory.LookupToken(ctx)
}

func (s *SSMStore) Set(ctx context.Context, accessToken, refreshToken string) error {
	data, err := json.Marshal(&schema.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken})
	if err != nil {
		return err
	}
	if _, err = s.api.PutParameter(ctx, &ssm.PutParameterInput{
		Name:      aws.String(s.name),
		Value:     aws.String(string(data)),
		Type:      types.ParameterTypeSecureString,
		Overwrite: aws.Bool(true),
	}); err != nil {
		return fmt.Errorf("failed to put parameter %v: %w", s.name, err)
	}
	s.memory.set(NewToken(accessToken, refreshToken))
	return nil
}

func (s *SSMStore) Clear(ctx context.Context) error {
	s.memory.set(nil)
	_, err := s.api.DeleteParameter(ctx, &ssm.DeleteParameterInput{Name: aws.String(s.name)})
	var notFound *types.ParameterNotFound
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("failed to delete parameter %v: %w", s.name, err)
	}
	return nil
}
