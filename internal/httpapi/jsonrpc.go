package httpapi

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/careerscout/careerscout/internal/dispatch"
)

// JSON-RPC 2.0 error codes.
const (
	rpcInvalidRequest = -32600
	rpcMethodNotFound = -32601
	rpcInternalError  = -32603
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// jsonRPC bridges JSON-RPC 2.0 clients onto the tool dispatcher. Protocol
// errors are reported in the response body; the HTTP status is always 200.
func jsonRPC(c *fiber.Ctx) error {
	var req rpcRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil || req.JSONRPC != "2.0" {
		return c.Status(fiber.StatusOK).JSON(rpcResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &rpcError{Code: rpcInvalidRequest, Message: "Invalid Request"},
		})
	}

	switch req.Method {
	case "tools/list":
		return c.Status(fiber.StatusOK).JSON(rpcResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  fiber.Map{"tools": dispatch.Registry()},
		})

	case "tools/call":
		var params rpcCallParams
		if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
			return c.Status(fiber.StatusOK).JSON(rpcResponse{
				JSONRPC: "2.0",
				ID:      req.ID,
				Error:   &rpcError{Code: rpcInvalidRequest, Message: "Invalid Request"},
			})
		}

		env, err := dispatch.Dispatch(c.Context(), params.Name, params.Arguments)
		if err != nil {
			if errors.Is(err, dispatch.ErrUnknownTool) {
				return c.Status(fiber.StatusOK).JSON(rpcResponse{
					JSONRPC: "2.0",
					ID:      req.ID,
					Error:   &rpcError{Code: rpcMethodNotFound, Message: "Unknown tool: " + params.Name},
				})
			}
			return c.Status(fiber.StatusOK).JSON(rpcResponse{
				JSONRPC: "2.0",
				ID:      req.ID,
				Error:   &rpcError{Code: rpcInternalError, Message: "Internal error"},
			})
		}

		return c.Status(fiber.StatusOK).JSON(rpcResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  env,
		})

	default:
		return c.Status(fiber.StatusOK).JSON(rpcResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &rpcError{Code: rpcMethodNotFound, Message: "Method not found: " + req.Method},
		})
	}
}
