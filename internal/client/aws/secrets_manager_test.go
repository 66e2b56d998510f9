package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSecrets struct {
	values map[string]string
	err    error
	calls  int
}

func (s *stubSecrets) GetSecretValue(_ context.Context, params *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	v, ok := s.values[aws.ToString(params.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(v)}, nil
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestSecretsManagerClient_GetSecretString(t *testing.T) {
	const arn = "arn:aws:secretsmanager:eu-west-1:123:secret:agent"

	tests := []struct {
		name      string
		secrets   *stubSecrets
		env       map[string]string
		want      string
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "plain text secret",
			secrets:   &stubSecrets{values: map[string]string{arn: "0xabc"}},
			env:       map[string]string{"AGENT_PRIVATE_KEY_ARN": arn},
			want:      "0xabc",
			wantCalls: 1,
		},
		{
			name:      "single key json secret",
			secrets:   &stubSecrets{values: map[string]string{arn: `{"private_key":"0xdef"}`}},
			env:       map[string]string{"AGENT_PRIVATE_KEY_ARN": arn},
			want:      "0xdef",
			wantCalls: 1,
		},
		{
			name:      "multi key json secret is returned raw",
			secrets:   &stubSecrets{values: map[string]string{arn: `{"a":"1","b":"2"}`}},
			env:       map[string]string{"AGENT_PRIVATE_KEY_ARN": arn},
			want:      `{"a":"1","b":"2"}`,
			wantCalls: 1,
		},
		{
			name:      "fetch failure falls back to env",
			secrets:   &stubSecrets{err: errors.New("AccessDenied")},
			env:       map[string]string{"AGENT_PRIVATE_KEY_ARN": arn, "AGENT_PRIVATE_KEY": "0x123"},
			want:      "0x123",
			wantCalls: 1,
		},
		{
			name:      "no arn uses env without calling aws",
			secrets:   &stubSecrets{},
			env:       map[string]string{"AGENT_PRIVATE_KEY": "0x456"},
			want:      "0x456",
			wantCalls: 0,
		},
		{
			name:    "nothing configured",
			secrets: &stubSecrets{},
			env:     map[string]string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewSecretsManagerClientWithAPI(tt.secrets, envMap(tt.env))

			got, err := client.GetSecretString(context.Background(), "AGENT_PRIVATE_KEY_ARN", "AGENT_PRIVATE_KEY")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "AGENT_PRIVATE_KEY")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, tt.secrets.calls)
		})
	}
}

func TestSecretsManagerClient_NilAPI(t *testing.T) {
	client := NewSecretsManagerClientWithAPI(nil, envMap(map[string]string{
		"FAUCET_PRIVATE_KEY_ARN": "arn:ignored",
		"FAUCET_PRIVATE_KEY":     "0xfeed",
	}))

	got, err := client.GetSecretString(context.Background(), "FAUCET_PRIVATE_KEY_ARN", "FAUCET_PRIVATE_KEY")
	require.NoError(t, err)
	assert.Equal(t, "0xfeed", got)
}
