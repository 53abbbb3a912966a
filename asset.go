package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srini-nathan/contract-nft/registry"
)

type addAssetRequest struct {
	PriceHint   uint64 `json:"price_hint"`
	ContentRef  string `json:"content_ref"`
	Content     []byte `json:"content"`
	BusinessKey uint64 `json:"business_key"`
}

type mintRequest struct {
	Owner string `json:"owner"`
}

func handleAddAsset() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := requester(c)
		if !ok {
			return
		}

		var req addAssetRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		// callers either name the content reference directly or submit
		// the raw content and take its fingerprint as the reference
		ref := req.ContentRef
		if ref == "" {
			if len(req.Content) == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "either content_ref or content is required"})
				return
			}
			ref = registry.Fingerprint(req.Content)
		}

		if err := reg.AddAsset(caller, req.PriceHint, ref, req.BusinessKey); err != nil {
			checkErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"business_key": req.BusinessKey, "content_ref": ref})
	}
}

func handleMint() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := paramUint(c, "key")
		if !ok {
			return
		}

		var req mintRequest
		if err := c.BindJSON(&req); err != nil || req.Owner == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		tokenID, err := reg.Mint(key, req.Owner)
		if err != nil {
			checkErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token_id": tokenID})
	}
}

func handleAssetInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := paramUint(c, "key")
		if !ok {
			return
		}

		info, err := reg.AssetInfo(key)
		if err != nil {
			checkErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"content_ref": info.ContentRef,
			"owner":       info.Owner,
			"price":       info.Price,
			"status":      info.Status.String(),
		})
	}
}

func handleTokenID() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := paramUint(c, "key")
		if !ok {
			return
		}

		tokenID, err := reg.TokenID(key)
		if err != nil {
			checkErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token_id": tokenID})
	}
}
