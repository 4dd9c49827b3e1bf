/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package staticproof -source=controller.go -mock_names staticProofService=MockStaticProofService

package staticproof

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/presentproof/pkg/holder"
	"github.com/trustbloc/presentproof/pkg/indy"
	"github.com/trustbloc/presentproof/pkg/ledger"
	"github.com/trustbloc/presentproof/pkg/restapi/resterr"
	"github.com/trustbloc/presentproof/pkg/restapi/v1/util"
)

const staticProofSvcOperation = "CreatePresentation"

type staticProofService interface {
	CreatePresentation(
		ctx context.Context,
		proofRequest *indy.ProofRequest,
		requestedCredentials *indy.RequestedCredentials,
	) (indy.Proof, error)
}

type Config struct {
	StaticProofSvc staticProofService
}

// Controller for the static proof API.
type Controller struct {
	staticProofSvc staticProofService
}

// NewController creates a new controller for the static proof API.
func NewController(config *Config) *Controller {
	return &Controller{
		staticProofSvc: config.StaticProofSvc,
	}
}

// Routes registers the controller's routes on the given router.
func (c *Controller) Routes(e *echo.Echo) {
	e.POST("/static-proof/create", c.CreateStaticProof)
}

// CreateStaticProof builds a presentation for the given proof request from
// the holder's credential selection. A fresh nonce is set on the proof
// request before the build.
func (c *Controller) CreateStaticProof(ctx echo.Context) error {
	var body CreateStaticProofRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if body.ProofRequest == nil {
		return resterr.NewValidationError(resterr.InvalidValue, "proof_request", errors.New("missing proof request"))
	}

	if body.Presentation == nil {
		return resterr.NewValidationError(resterr.InvalidValue, "presentation", errors.New("missing presentation"))
	}

	nonce, err := indy.GenerateNonce()
	if err != nil {
		return resterr.NewSystemError(resterr.StaticProofSvcComponent, staticProofSvcOperation, err)
	}

	body.ProofRequest.Nonce = nonce

	proof, err := c.staticProofSvc.CreatePresentation(ctx.Request().Context(), body.ProofRequest, body.Presentation)
	if err != nil {
		return mapServiceError(err)
	}

	return util.WriteOutput(ctx)(&StaticProofResponse{
		Presentation:        proof,
		PresentationRequest: body.ProofRequest,
	}, nil)
}

func mapServiceError(err error) error {
	var holderErr *holder.Error

	switch {
	case errors.Is(err, holder.ErrCredentialNotFound):
		return resterr.NewValidationError(resterr.DoesntExist, "presentation.cred_id", err)
	case errors.Is(err, ledger.ErrObjectNotFound):
		return resterr.NewValidationError(resterr.DoesntExist, "proof_request", err)
	case errors.Is(err, ledger.ErrUnavailable):
		return resterr.NewSystemError(resterr.LedgerComponent, staticProofSvcOperation, err)
	case errors.As(err, &holderErr):
		return resterr.NewSystemError(resterr.CryptoHolderComponent, staticProofSvcOperation,
			fmt.Errorf("holder error %s: %w", holderErr.Code, err))
	default:
		return resterr.NewSystemError(resterr.StaticProofSvcComponent, staticProofSvcOperation, err)
	}
}
