package constants

// Wedding contract methods
const (
	MethodPropose                 = "propose"
	MethodUpdateProposition       = "updateProposition"
	MethodAcceptProposition       = "acceptProposition"
	MethodRequestDivorce          = "requestDivorce"
	MethodConfirmDivorce          = "confirmDivorce"
	MethodGetCurrentMarriage      = "getCurrentMarriage"
	MethodGetIncomingPropositions = "getIncomingPropositions"
	MethodGetOutgoingPropositions = "getOutgoingPropositions"
)

// Faucet contract methods
const (
	MethodFaucet = "faucet"
)
